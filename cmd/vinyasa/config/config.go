// Package configcmder provides the config command for managing persistent
// vinyasa configuration stored in the .vinyasa/ directory.
package configcmder

import (
	"github.com/spf13/cobra"
)

const configLongDesc string = `Manage persistent vinyasa configuration.

Configuration is stored as config.toml in the .vinyasa/ directory and
provides default values for command flags. CLI flags always take
precedence over config file values.

Keys use dotted notation matching the TOML section structure:
  server.listen, client.target,
  llm.provider, llm.model, llm.temperature,
  llm.groq_target, llm.gemini_target, llm.ollama_target,
  storage.provider, storage.sqlite_path, storage.postgres_dsn, storage.mongo_uri,
  vector_store.provider, vector_store.target, vector_store.path,
  embedding.provider, embedding.target, embedding.model, embedding.dimensions,
  events.provider, events.brokers, events.topic,
  rag.enabled, rag.knowledge_file

Use subcommands to get, set, or list configuration values:
  vinyasa config set <key> <value>    Set a configuration value
  vinyasa config get <key>            Get a configuration value
  vinyasa config list                 List all configuration values
  vinyasa config preset <name>        Reset to a provider preset

Examples:
  vinyasa config set llm.provider groq
  vinyasa config set embedding.model embeddinggemma
  vinyasa config get llm.model
  vinyasa config list`

const configShortDesc string = "Manage persistent vinyasa configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newPresetCmd())

	return cmd
}
