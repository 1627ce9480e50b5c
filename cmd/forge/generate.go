package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/blockforge-backend/internal/contract/codegen"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/templates"
	"github.com/pterm/pterm"
)

// stdout receives generated sources so they can be piped.
var stdout io.Writer = os.Stdout

type catalogCommand struct {
	cli *cli
}

func (c *catalogCommand) Execute([]string) error {
	a := c.cli.offline()
	features, blocks := a.Service.Catalog()

	pterm.DefaultSection.Println("Features")
	rows := pterm.TableData{{"ID", "Name", "Category", "Blocks"}}
	for _, f := range features {
		tags := make([]string, 0, len(f.Blocks))
		for _, b := range f.Blocks {
			tags = append(tags, string(b.Type))
		}
		rows = append(rows, []string{string(f.ID), f.Name, string(f.Category), strings.Join(tags, ", ")})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		return err
	}

	pterm.DefaultSection.Println("Blocks")
	rows = pterm.TableData{{"Type", "Message", "Feature"}}
	for _, b := range blocks {
		rows = append(rows, []string{string(b.Type), b.Message, string(b.Feature)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

type outputOptions struct {
	Out string `long:"out" short:"o" description:"write the source to this file instead of stdout"`
}

func (o outputOptions) write(source string) error {
	if o.Out == "" {
		_, err := fmt.Fprintln(stdout, source)
		return err
	}
	if err := os.WriteFile(o.Out, []byte(source), 0o644); err != nil {
		return err
	}
	pterm.Success.Printfln("wrote %s", o.Out)
	return nil
}

type generateCommand struct {
	cli *cli
	outputOptions

	Name string `long:"name" short:"n" description:"contract name"`
	Args struct {
		Workspace string `positional-arg-name:"workspace" description:"serialized workspace JSON file, - for stdin"`
	} `positional-args:"yes" required:"yes"`
}

func (c *generateCommand) Execute([]string) error {
	data, err := readInput(c.Args.Workspace)
	if err != nil {
		return err
	}
	a := c.cli.offline()
	res, err := a.Service.GenerateFromBlocks(c.cli.ctx, c.Name, data)
	if err != nil {
		return err
	}
	printDiagnostics(res.Diagnostics)
	if codegen.HasErrors(res.Diagnostics) {
		pterm.Warning.Println("source generated with errors")
	}
	return c.write(res.Source)
}

func printDiagnostics(diags []codegen.Diagnostic) {
	for _, d := range diags {
		switch d.Severity {
		case codegen.SeverityError:
			pterm.Error.Println(d.String())
		case codegen.SeverityWarning:
			pterm.Warning.Println(d.String())
		default:
			pterm.Info.Println(d.String())
		}
	}
}

type paramOptions struct {
	Name           string `long:"name" short:"n" description:"contract name"`
	DisplayName    string `long:"display-name" description:"token or collection display name"`
	Symbol         string `long:"symbol" description:"token symbol"`
	Decimals       *uint8 `long:"decimals" description:"token decimals (default: 18)"`
	InitialSupply  uint64 `long:"supply" description:"initial token supply"`
	VotingDuration uint64 `long:"voting-duration" description:"proposal voting period in seconds"`
	PlatformFee    uint32 `long:"fee" description:"marketplace fee in basis points"`
}

func (p paramOptions) params() templates.Params {
	return templates.Params{
		ContractName:   p.Name,
		Name:           p.DisplayName,
		Symbol:         p.Symbol,
		Decimals:       p.Decimals,
		InitialSupply:  p.InitialSupply,
		VotingDuration: p.VotingDuration,
		PlatformFee:    p.PlatformFee,
	}
}

type templateCommand struct {
	cli *cli
	outputOptions
	paramOptions

	Args struct {
		Feature string `positional-arg-name:"feature" description:"loyalty, certificates, governance or marketplace"`
	} `positional-args:"yes" required:"yes"`
}

func (c *templateCommand) Execute([]string) error {
	a := c.cli.offline()
	source, err := a.Service.RenderTemplate(c.cli.ctx, model.FeatureID(c.Args.Feature), c.params())
	if err != nil {
		return err
	}
	return c.write(source)
}

type composeCommand struct {
	cli *cli
	outputOptions
	paramOptions

	Args struct {
		Features []string `positional-arg-name:"feature" description:"features to combine"`
	} `positional-args:"yes" required:"yes"`
}

func (c *composeCommand) Execute([]string) error {
	a := c.cli.offline()
	ids := make([]model.FeatureID, 0, len(c.Args.Features))
	for _, f := range c.Args.Features {
		ids = append(ids, model.FeatureID(f))
	}
	source, err := a.Service.ComposeFeatures(c.cli.ctx, ids, c.params())
	if err != nil {
		return err
	}
	return c.write(source)
}

type validateCommand struct {
	cli  *cli
	Args struct {
		Source string `positional-arg-name:"source" description:"Solidity file, - for stdin"`
	} `positional-args:"yes" required:"yes"`
}

func (c *validateCommand) Execute([]string) error {
	data, err := readInput(c.Args.Source)
	if err != nil {
		return err
	}
	a := c.cli.offline()
	report, err := a.Service.Validate(string(data))
	if err != nil {
		return err
	}
	pterm.Success.Printfln("%s is ready to deploy", report.ContractName)
	return pterm.DefaultTable.WithData(pterm.TableData{
		{"Gas estimate", strconv.FormatUint(report.GasEstimate, 10)},
		{"Lines", strconv.Itoa(report.Lines)},
		{"Functions", strconv.Itoa(report.Functions)},
	}).Render()
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
