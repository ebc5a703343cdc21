package builtin

import (
	"github.com/zjrosen/pagekit/internal/bootstrap"
	"github.com/zjrosen/pagekit/internal/host"
)

var extensionSetters = []string{
	"ArraySetter",
	"BoolSetter",
	"ClassNameSetter",
	"ColorSetter",
	"EventsSetter",
	"FunctionSetter",
	"I18nSetter",
	"IconSetter",
	"JsonSetter",
	"MixedSetter",
	"NumberSetter",
	"ObjectSetter",
	"RadioGroupSetter",
	"SelectSetter",
	"SlotSetter",
	"StringSetter",
	"StyleSetter",
	"TextAreaSetter",
	"VariableSetter",
}

// Setters returns the extension setter map and the three custom setters.
func Setters() bootstrap.Setters {
	ext := make(map[string]host.Setter, len(extensionSetters))
	for _, name := range extensionSetters {
		ext[name] = Renderer(name)
	}
	return bootstrap.Setters{
		Extension: ext,
		Title:     Renderer("TitleSetter"),
		Behavior:  Renderer("BehaviorSetter"),
		Custom:    Renderer("CustomSetter"),
	}
}
