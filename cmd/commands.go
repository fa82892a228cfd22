package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/davidbz/codecraft/internal/config"
	"github.com/davidbz/codecraft/internal/domain"
	"github.com/davidbz/codecraft/internal/http"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Generate complete web pages from a text description",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newKeyCmd())
	root.AddCommand(newModelsCmd())
	root.AddCommand(newServeCmd())

	return root
}

func newGenerateCmd() *cobra.Command {
	var (
		model       string
		temperature float64
		outDir      string
	)

	cmd := &cobra.Command{
		Use:   "generate <description>",
		Short: "Generate a page and print or export its HTML, CSS and JavaScript",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return buildContainer().Invoke(func(generator *domain.Generator, defaults *config.GenerationConfig) error {
				if !cmd.Flags().Changed("model") {
					model = defaults.Model
				}
				if !cmd.Flags().Changed("temperature") {
					temperature = defaults.Temperature
				}

				modelID, err := domain.ParseModelID(model)
				if err != nil {
					return err
				}

				artifact, err := generator.GenerateArtifacts(cmd.Context(), strings.Join(args, " "), modelID, temperature)
				if err != nil {
					return err
				}

				if outDir == "" {
					_, err = io.WriteString(cmd.OutOrStdout(), artifact.HTML)
					return err
				}

				if err := domain.WriteArtifacts(outDir, artifact); err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s, %s and %s to %s\n",
					domain.HTMLFileName, domain.CSSFileName, domain.JSFileName, outDir)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", string(domain.DefaultModel), "model identifier (see `models`)")
	cmd.Flags().Float64VarP(&temperature, "temperature", "t", 0.3, "sampling temperature between 0 and 1")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory to write index.html, style.css and script.js into")

	return cmd
}

func newKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the stored OpenRouter API key",
	}

	cmd.AddCommand(newKeySetCmd())
	cmd.AddCommand(newKeyShowCmd())
	cmd.AddCommand(newKeyClearCmd())

	return cmd
}

func newKeySetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [api-key]",
		Short: "Store the API key, prompting for it when not given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var apiKey string
			if len(args) == 1 {
				apiKey = args[0]
			} else {
				read, err := readKey(cmd)
				if err != nil {
					return err
				}
				apiKey = read
			}

			return buildContainer().Invoke(func(credentials *domain.CredentialStore) error {
				if err := credentials.Set(cmd.Context(), apiKey); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "API key saved")
				return err
			})
		},
	}
}

// readKey reads a key from a terminal without echo, or one line from piped input.
func readKey(cmd *cobra.Command) (string, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), "OpenRouter API key: ")
		raw, err := term.ReadPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}
	return line, nil
}

func newKeyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show whether an API key is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return buildContainer().Invoke(func(credentials *domain.CredentialStore) error {
				key, ok, err := credentials.Get(cmd.Context())
				if err != nil {
					return err
				}
				if !ok {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), "no API key stored")
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "API key:", http.MaskKey(key))
				return err
			})
		},
	}
}

func newKeyClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return buildContainer().Invoke(func(credentials *domain.CredentialStore) error {
				if err := credentials.Clear(cmd.Context()); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "API key cleared")
				return err
			})
		},
	}
}

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the selectable models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return buildContainer().Invoke(func(defaults *config.GenerationConfig) error {
				def := domain.ConfiguredModel(defaults.Model)

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				_, _ = fmt.Fprintln(tw, "ID\tNAME\tPROVIDER MODEL")
				for _, m := range domain.Models() {
					id := string(m.ID)
					if m.ID == def {
						id += " (default)"
					}
					_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", id, m.DisplayName, m.ProviderModel)
				}
				return tw.Flush()
			})
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the local HTTP API and preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return buildContainer().Invoke(func(server *http.Server) error {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()

				errCh := make(chan error, 1)
				go func() {
					errCh <- server.Start()
				}()

				select {
				case err := <-errCh:
					return err
				case <-ctx.Done():
				}

				shutdownCtx, cancel := context.WithTimeout(context.Background(), serverStopDeadline)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			})
		},
	}
}
