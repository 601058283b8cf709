package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/erraggy/flexschema"
)

// VersionInfo represents version information
type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildTime string `json:"build_time" yaml:"build_time"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

func (a *app) newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			if err := ValidateOutputFormat(format); err != nil {
				return err
			}
			info := VersionInfo{
				Version:   flexschema.Version(),
				Commit:    flexschema.Commit(),
				BuildTime: flexschema.BuildTime(),
				GoVersion: flexschema.GoVersion(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}
			if format != FormatText {
				return OutputStructured(cmd.OutOrStdout(), info, format)
			}
			_, err := cmd.OutOrStdout().Write([]byte(flexschema.BuildInfo() + "\n"))
			return err
		},
	}
	cmd.Flags().StringP("format", "f", FormatText, "output format (text, json, yaml)")
	return cmd
}
