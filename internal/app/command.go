package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shandysiswandi/parserconfig/internal/parserconfig"
	"github.com/shandysiswandi/parserconfig/internal/pkg/pkgerror"
)

// annotationStore marks commands that need a loaded store.
const annotationStore = "parserconfig/store"

func (a *App) initCommands() {
	root := &cobra.Command{
		Use:               "parserconfig",
		Short:             "Read and edit INI configuration files",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return pkgerror.NewValidation(err, "", pkgerror.CodeInvalidInput)
	})

	flags := root.PersistentFlags()
	flags.StringVar(&a.settingsFile, "config", "", "YAML settings file for parserconfig itself")
	flags.StringP("file", "f", "", "INI configuration file to operate on")
	flags.Bool("create", false, "create the configuration file if it does not exist")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-format", "", "log format: json or text")

	root.AddCommand(
		a.sectionsCommand(),
		a.getCommand(),
		a.credentialsCommand(),
		a.setCommand(),
		a.addSectionCommand(),
		a.removeSectionCommand(),
		a.removeOptionCommand(),
	)

	a.root = root
}

func storeCommand(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[annotationStore] = "true"
	return cmd
}

func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return pkgerror.NewValidation(err, "", pkgerror.CodeInvalidInput)
		}
		return nil
	}
}

func (a *App) sectionsCommand() *cobra.Command {
	return storeCommand(&cobra.Command{
		Use:   "sections",
		Short: "List section names",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range a.store.Sections() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	})
}

func (a *App) getCommand() *cobra.Command {
	return storeCommand(&cobra.Command{
		Use:   "get SECTION OPTION",
		Short: "Print the value of an option",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := a.store.Get(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	})
}

func (a *App) credentialsCommand() *cobra.Command {
	var valuesOnly bool

	cmd := storeCommand(&cobra.Command{
		Use:   "credentials SECTION [OPTION...]",
		Short: "Print option=value pairs of a section in the requested order",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := a.store.Credentials(args[0], args[1:]...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, cred := range creds {
				if valuesOnly {
					fmt.Fprintln(out, cred.Value)
					continue
				}
				fmt.Fprintf(out, "%s=%s\n", cred.Option, cred.Value)
			}
			return nil
		},
	})
	cmd.Flags().BoolVar(&valuesOnly, "values", false, "print values only, one per line")

	return cmd
}

func (a *App) setCommand() *cobra.Command {
	var addSection bool

	cmd := storeCommand(&cobra.Command{
		Use:   "set SECTION OPTION VALUE",
		Short: "Set an option and save the file",
		Args:  usageArgs(cobra.ExactArgs(3)),
		RunE: func(_ *cobra.Command, args []string) error {
			section, option, value := args[0], args[1], args[2]

			if addSection && !a.store.HasSection(section) && section != parserconfig.DefaultSection {
				if err := a.store.AddSection(section); err != nil {
					return err
				}
			}
			if err := a.store.Set(section, option, value); err != nil {
				return err
			}
			return a.store.Save()
		},
	})
	cmd.Flags().BoolVar(&addSection, "add-section", false, "create the section if it does not exist")

	return cmd
}

func (a *App) addSectionCommand() *cobra.Command {
	return storeCommand(&cobra.Command{
		Use:   "add-section SECTION",
		Short: "Add an empty section and save the file",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.store.AddSection(args[0]); err != nil {
				return err
			}
			return a.store.Save()
		},
	})
}

func (a *App) removeSectionCommand() *cobra.Command {
	return storeCommand(&cobra.Command{
		Use:   "remove-section SECTION",
		Short: "Remove a section and save the file",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			if !a.store.RemoveSection(args[0]) {
				return pkgerror.NewLookup(nil, fmt.Sprintf("no section: %q", args[0]), pkgerror.CodeSectionNotFound)
			}
			return a.store.Save()
		},
	})
}

func (a *App) removeOptionCommand() *cobra.Command {
	return storeCommand(&cobra.Command{
		Use:   "remove-option SECTION OPTION",
		Short: "Remove an option and save the file",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(_ *cobra.Command, args []string) error {
			removed, err := a.store.RemoveOption(args[0], args[1])
			if err != nil {
				return err
			}
			if !removed {
				msg := fmt.Sprintf("no option %q in section: %q", strings.ToLower(args[1]), args[0])
				return pkgerror.NewLookup(nil, msg, pkgerror.CodeOptionNotFound)
			}
			return a.store.Save()
		},
	})
}
