package cli

import (
	"github.com/DANNY1169/resume-role-classifier/internal/common"
	"github.com/DANNY1169/resume-role-classifier/internal/types"

	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Show the role catalog used for classification",
	Long: `Show the four narrative roles and the reference descriptions their
embeddings are computed from. Descriptions can be overridden in the
configuration file under the roles section.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if rolesConfig.OutputFormat == "" {
			rolesConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(rolesConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runRoles,
}

var rolesConfig common.CommandConfig

func init() {
	rolesCmd.Flags().StringVarP(&rolesConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	rolesCmd.Flags().StringVar(&rolesConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
}

func runRoles(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	catalog := types.RoleCatalog{Roles: cfg.RoleDefinitions()}

	outputHandler := common.NewOutputHandler(logger)
	return outputHandler.HandleOutput(catalog, rolesConfig)
}
