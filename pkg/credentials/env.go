package credentials

import "os"

// ImportFromEnv copies API keys found in the environment into the stored
// credentials file, so keys exported for one shell session survive it.
// Returns the provider names that were imported. Providers whose environment
// variable is unset are skipped; existing stored keys are overwritten.
func (m *Manager) ImportFromEnv() ([]string, error) {
	creds, err := m.Load()
	if err != nil {
		return nil, err
	}

	var imported []string
	for _, provider := range SupportedProviders() {
		key := os.Getenv(EnvVarForProvider(provider))
		if key == "" {
			continue
		}
		creds.Providers[provider] = ProviderCredential{APIKey: key}
		imported = append(imported, provider)
	}

	if len(imported) == 0 {
		return nil, nil
	}

	if err := m.Save(creds); err != nil {
		return nil, err
	}

	return imported, nil
}
