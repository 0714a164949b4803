// Generates Go bindings from ink! contract metadata
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/indexsupply/inkwrap/gen"
	"github.com/indexsupply/inkwrap/ink"
	"github.com/indexsupply/inkwrap/metadata"
	"github.com/indexsupply/inkwrap/rpc"
	"github.com/indexsupply/inkwrap/wctx"
	"github.com/indexsupply/inkwrap/wos"
	"github.com/indexsupply/inkwrap/wslog"
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("inkwrap")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func newCommand(v *viper.Viper) *cobra.Command {
	root := genCommand(v)
	root.AddCommand(readCommand(v))
	return root
}

// bindFlags lets INKWRAP_* variables set the flags
// of the root command.
func bindFlags(v *viper.Viper, c *cobra.Command) error {
	if err := v.BindPFlags(c.Root().Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	if err := v.BindPFlags(c.Root().PersistentFlags()); err != nil {
		return fmt.Errorf("binding persistent flags: %w", err)
	}
	return nil
}

func main() {
	root := newCommand(newViper())
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("error:"), err)
		os.Exit(1)
	}
}

func setupLog(verbose bool) {
	logLevel := new(slog.LevelVar)
	logLevel.Set(slog.LevelInfo)
	if verbose {
		logLevel.Set(slog.LevelDebug)
	}
	lh := wslog.New(os.Stderr, &wslog.Options{Level: logLevel, Color: true})
	lh.RegisterContext(func(ctx context.Context) (string, any) {
		p := wctx.Metadata(ctx)
		if p == "" {
			return "", nil
		}
		return "metadata", p
	})
	lh.RegisterContext(func(ctx context.Context) (string, any) {
		name := wctx.Contract(ctx)
		if name == "" {
			return "", nil
		}
		return "contract", name
	})
	lh.RegisterContext(func(ctx context.Context) (string, any) {
		name := wctx.Backend(ctx)
		if name == "" {
			return "", nil
		}
		return "backend", name
	})
	lh.RegisterContext(func(ctx context.Context) (string, any) {
		id := wctx.RequestID(ctx)
		if id == "" {
			return "", nil
		}
		return "req", id
	})
	slog.SetDefault(slog.New(lh))
}

func genCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inkwrap",
		Short: "Generate Go bindings for an ink! contract",
		Long: `inkwrap reads the metadata emitted by cargo-contract and
writes a Go package with the contract's types, constructors,
messages and events. Flags may be set with INKWRAP_<FLAG>.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			if err := bindFlags(v, c); err != nil {
				return err
			}
			setupLog(v.GetBool("verbose"))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := v.GetString("metadata")
			if path == "" {
				return errors.New("missing --metadata")
			}
			ctx := wctx.WithMetadata(cmd.Context(), path)
			c, err := metadata.ParseFile(path)
			if err != nil {
				return err
			}
			ctx = wctx.WithContract(ctx, c.Name)
			slog.DebugContext(ctx, "parsed",
				"types", len(c.Registry.Types()),
				"constructors", len(c.Constructors),
				"messages", len(c.Messages),
				"events", len(c.Events),
			)
			code, err := gen.Gen(c, gen.Options{
				Package:  v.GetString("package"),
				Source:   filepath.Base(path),
				WasmPath: v.GetString("wasm-path"),
			})
			if err != nil {
				return err
			}
			out := v.GetString("output")
			if out == "" {
				_, err := cmd.OutOrStdout().Write(code)
				return err
			}
			if err := os.WriteFile(out, code, 0644); err != nil {
				return fmt.Errorf("writing bindings: %w", err)
			}
			slog.InfoContext(ctx, "wrote", "file", out, "n", len(code))
			return nil
		},
	}
	f := cmd.Flags()
	f.String("metadata", "", "contract metadata `file` (required)")
	f.String("wasm-path", "", "contract code `file` to embed, relative to the output")
	f.String("package", "", "package `name` (default: the contract's name)")
	f.StringP("output", "o", "", "output `file` (default stdout)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "debug logs")
	return cmd
}

func readCommand(v *viper.Viper) *cobra.Command {
	var url wos.EnvString
	cmd := &cobra.Command{
		Use:   "read <contract> <data>",
		Short: "Dry-run an encoded message against a node",
		Long: `read calls a contract without submitting a transaction and
prints the returned bytes as hex. Both arguments are 0x hex.
The url may be $NAME to read it from the environment.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				if err := url.Set(v.GetString("url")); err != nil {
					return err
				}
			}
			if url == "" {
				return errors.New("missing --url")
			}
			var id ink.AccountID
			b, err := hexutil.Decode(args[0])
			if err != nil || len(b) != len(id) {
				return fmt.Errorf("contract %q must be 32 bytes of hex", args[0])
			}
			copy(id[:], b)
			data, err := hexutil.Decode(args[1])
			if err != nil {
				return fmt.Errorf("data: %w", err)
			}

			var (
				nreq uint64
				ctx  = wctx.WithCounter(cmd.Context(), &nreq)
				conn = rpc.New(string(url))
			)
			res, err := conn.Call(ctx, ink.CallArgs{AccountID: id, Data: data})
			slog.DebugContext(ctx, "read", "requests", wctx.Counter(ctx))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hexutil.Encode(res))
			return nil
		},
	}
	cmd.Flags().Var(&url, "url", "node json-rpc `url` or $NAME")
	return cmd
}
