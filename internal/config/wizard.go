package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result
// to path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Vamos configurar o legisclaro.")
	fmt.Println()

	cfg := DefaultConfig()

	providerPrompt := promptui.Select{
		Label: "Provedor do modelo de linguagem",
		Items: []string{"openai", "anthropic", "google", "ollama"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	cfg.Provider = ProviderType(providerStr)

	modelPrompt := promptui.Prompt{
		Label:   "Modelo",
		Default: defaultModelFor(cfg.Provider),
	}
	if cfg.Model, err = modelPrompt.Run(); err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}

	portalPrompt := promptui.Prompt{
		Label:   "URL base do portal de legislação",
		Default: defaultPortalBaseURL,
	}
	if cfg.PortalBaseURL, err = portalPrompt.Run(); err != nil {
		return nil, fmt.Errorf("portal URL: %w", err)
	}

	portPrompt := promptui.Prompt{
		Label:   "Porta HTTP",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			_, convErr := strconv.Atoi(s)
			return convErr
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	if envVar := APIKeyEnvVar(cfg.Provider); envVar != "" {
		fmt.Printf("\nConfiguração salva em %s. Defina %s antes de executar.\n", path, envVar)
	} else {
		fmt.Printf("\nConfiguração salva em %s.\n", path)
	}
	return cfg, nil
}

func defaultModelFor(provider ProviderType) string {
	switch provider {
	case ProviderAnthropic:
		return "claude-haiku-4-5-20251001"
	case ProviderGoogle:
		return "gemini-3-flash-preview"
	case ProviderOllama:
		return "llama3"
	default:
		return "gpt-4o-mini"
	}
}
