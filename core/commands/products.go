/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Oferente Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oferente/panel/core/products"
	"github.com/oferente/panel/core/tables"
)

// viewFlags shape the table the same way the q/sort/dir query parameters do.
type viewFlags struct {
	search    string
	sort      string
	direction string
}

func (f *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.search, "q", "q", "", "Search term")
	cmd.Flags().StringVar(&f.sort, "sort", "", "Column key to sort by")
	cmd.Flags().StringVar(&f.direction, "dir", "asc", "Sort direction (asc or desc)")
}

func (f *viewFlags) view(ps []products.Product) *tables.TableView[products.Product] {
	view := tables.NewTableView(ps, products.Table(products.TableActions{}))
	view.SetSearchTerm(f.search)
	if f.sort != "" {
		view.SetSort(f.sort, tables.ParseDirection(f.direction))
	}
	return view
}

func newProductsCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Inspect and load the product catalog",
	}
	cmd.AddCommand(
		newProductsListCommand(e),
		newProductsExportCommand(e),
		newProductsImportCommand(e),
	)
	return cmd
}

func newProductsListCommand(e *env) *cobra.Command {
	var flags viewFlags
	var page, size int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the product table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := e.listProducts(cmd.Context())
			if err != nil {
				return err
			}
			view := flags.view(ps)
			if size <= 0 {
				size = e.cfg.Table.DefaultPageSize
			}
			view.SetPage(page-1, size)
			fmt.Fprint(cmd.OutOrStdout(), view.RenderText())
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&page, "page", 1, "Page number, starting at 1")
	cmd.Flags().IntVar(&size, "size", 0, "Rows per page (defaults to table.default_page_size)")
	return cmd
}

func newProductsExportCommand(e *env) *cobra.Command {
	var flags viewFlags
	var format, output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every matching product as CSV or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := e.listProducts(cmd.Context())
			if err != nil {
				return err
			}
			view := flags.view(ps)

			var export tables.Export
			switch format {
			case "csv":
				export = view.ExportCSV()
			case "json":
				if export, err = view.ExportJSON(); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown export format %q (want csv or json)", format)
			}

			if output == "" || output == "-" {
				_, err := cmd.OutOrStdout().Write(export.Body)
				return err
			}
			if err := os.WriteFile(output, export.Body, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			e.logger.Info("exported products", zap.String("path", output), zap.Int("rows", view.Total()))
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "Export format (csv or json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}

func newProductsImportCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Create products from a CSV file",
		Long: `import creates one product per CSV record. The header may use the field
names (name, price, category, ...) or the labels of an exported table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			rows, err := products.ImportCSV(f)
			if err != nil {
				return err
			}

			app, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()
			for _, data := range rows {
				p, err := app.Catalog.Create(cmd.Context(), data)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p.ID, p.Name)
			}
			e.logger.Info("imported products", zap.Int("count", len(rows)), zap.String("file", args[0]))
			return nil
		},
	}
}

func (e *env) listProducts(ctx context.Context) ([]products.Product, error) {
	app, err := e.open(ctx)
	if err != nil {
		return nil, err
	}
	defer app.Close()
	return app.Repository.List(ctx)
}
