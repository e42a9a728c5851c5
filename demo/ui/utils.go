package ui

import (
	"fmt"

	"github.com/AllenDang/imgui-go"
)

// SliderWithValue is a slider followed by its value on the same line.
func SliderWithValue(label string, value *float32, min, max float32, changes ...func(v float32)) {
	if imgui.SliderFloat("##"+label, value, min, max) {
		for _, f := range changes {
			f(*value)
		}
	}
	imgui.SameLine()
	imgui.Text(fmt.Sprintf("%s %.1f", label, *value))
}
