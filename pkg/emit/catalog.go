package emit

import (
	"fmt"
	"strings"

	"github.com/Chickencurry27/storybook/pkg/graph"
)

// Catalog renders the Storybook stories file: one text control per text prop,
// a Default story, a WithImage story when the component contains any asset
// candidate, and a CustomClass story always. Text props always carry a
// non-empty default (a component without text layers gets one synthesized at
// annotation time), so the Default story never renders blank.
func Catalog(comp *graph.Component) string {
	var sb strings.Builder

	sb.WriteString("import React from 'react';\n")
	sb.WriteString(fmt.Sprintf("import %s from './%s';\n", comp.Name, comp.Name))
	sb.WriteString("\n")

	sb.WriteString("export default {\n")
	sb.WriteString(fmt.Sprintf("  title: 'Generated/%s',\n", comp.Name))
	sb.WriteString(fmt.Sprintf("  component: %s,\n", comp.Name))
	sb.WriteString("  argTypes: {\n")
	for _, p := range comp.TextProps {
		sb.WriteString(fmt.Sprintf("    %s: { control: 'text' },\n", p.Name))
	}
	sb.WriteString("    className: { control: 'text' },\n")
	sb.WriteString("  },\n")
	sb.WriteString("};\n")
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("const Template = (args) => <%s {...args} />;\n", comp.Name))
	sb.WriteString("\n")

	sb.WriteString("export const Default = Template.bind({});\n")
	sb.WriteString("Default.args = {\n")
	for _, p := range comp.TextProps {
		sb.WriteString(fmt.Sprintf("  %s: %s,\n", p.Name, jsString(p.Default)))
	}
	sb.WriteString("};\n")

	if comp.HasAssets {
		sb.WriteString("\n")
		sb.WriteString("export const WithImage = Template.bind({});\n")
		sb.WriteString("WithImage.args = {\n")
		sb.WriteString("  ...Default.args,\n")
		sb.WriteString("};\n")
	}

	sb.WriteString("\n")
	sb.WriteString("export const CustomClass = Template.bind({});\n")
	sb.WriteString("CustomClass.args = {\n")
	sb.WriteString("  ...Default.args,\n")
	sb.WriteString(fmt.Sprintf("  className: %s,\n", jsString("custom-"+strings.ToLower(comp.Name))))
	sb.WriteString("};\n")

	return sb.String()
}
