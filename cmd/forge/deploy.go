package main

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/evm"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/service"
	"github.com/pterm/pterm"
)

type deployCommand struct {
	cli *cli

	Name    string `long:"name" short:"n" description:"contract name, defaults to the first contract in the source"`
	Method  string `long:"method" short:"m" description:"deployment method" choice:"hardhat" choice:"rpc" default:"hardhat"`
	Account string `long:"account" short:"a" description:"signing account for rpc deployments"`
	Args    struct {
		Source string `positional-arg-name:"source" description:"Solidity file, - for stdin"`
	} `positional-args:"yes" required:"yes"`
}

func (c *deployCommand) Execute([]string) error {
	data, err := readInput(c.Args.Source)
	if err != nil {
		return err
	}
	req := service.DeployRequest{
		Source:       string(data),
		ContractName: c.Name,
		Method:       model.DeployMethod(c.Method),
	}
	if c.Account != "" {
		if !common.IsHexAddress(c.Account) {
			return fmt.Errorf("invalid account %q", c.Account)
		}
		req.Account = common.HexToAddress(c.Account)
	}

	a, err := c.cli.builder()
	if err != nil {
		return err
	}
	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Deploying to %s via %s", a.Network.Name, c.Method))
	d, err := a.Service.Deploy(c.cli.ctx, req)
	if err != nil {
		if spinner != nil {
			spinner.Fail(err.Error())
		}
		return err
	}
	if spinner != nil {
		spinner.Success(fmt.Sprintf("%s deployed", d.ContractName))
	}
	return renderDeployment(d)
}

func renderDeployment(d model.Deployment) error {
	rows := pterm.TableData{
		{"Contract", d.ContractName},
		{"Address", d.Address.Hex()},
		{"Network", d.Network},
		{"Method", string(d.Method)},
	}
	if d.TxHash != (common.Hash{}) {
		rows = append(rows,
			[]string{"Transaction", d.TxHash.Hex()},
			[]string{"Block", strconv.FormatUint(d.BlockNumber, 10)},
			[]string{"Gas used", strconv.FormatUint(d.GasUsed, 10)},
		)
	}
	if d.Deployer != (common.Address{}) {
		rows = append(rows, []string{"Deployer", d.Deployer.Hex()})
	}
	if d.ExplorerURL != "" {
		rows = append(rows, []string{"Explorer", d.ExplorerURL})
	}
	return pterm.DefaultTable.WithData(rows).Render()
}

type accountsCommand struct {
	cli *cli
}

func (c *accountsCommand) Execute([]string) error {
	a, err := c.cli.builder()
	if err != nil {
		return err
	}
	names, err := a.Wallet.Enable()
	if err != nil {
		return err
	}
	pterm.Info.Printfln("wallets: %v", names)

	accounts, err := a.Wallet.Accounts(c.cli.ctx)
	if err != nil {
		return err
	}
	rows := pterm.TableData{{"Address", "Name", "Source"}}
	for _, acc := range accounts {
		rows = append(rows, []string{acc.Address.Hex(), acc.Name, acc.Source})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

type balanceCommand struct {
	cli *cli

	Workers int `long:"workers" description:"concurrent balance queries" default:"4"`
	Args    struct {
		Addresses []string `positional-arg-name:"address" description:"addresses, defaults to every wallet account"`
	} `positional-args:"yes"`
}

func (c *balanceCommand) Execute([]string) error {
	addresses := make([]common.Address, 0, len(c.Args.Addresses))
	for _, s := range c.Args.Addresses {
		if !common.IsHexAddress(s) {
			return fmt.Errorf("invalid address %q", s)
		}
		addresses = append(addresses, common.HexToAddress(s))
	}

	a, err := c.cli.builder()
	if err != nil {
		return err
	}
	if len(addresses) == 0 {
		accounts, err := a.Wallet.Accounts(c.cli.ctx)
		if err != nil {
			return err
		}
		for _, acc := range accounts {
			addresses = append(addresses, acc.Address)
		}
	}

	balances, err := evm.Balances(c.cli.ctx, a.Client, addresses, c.Workers)
	if err != nil {
		return err
	}
	rows := pterm.TableData{{"Address", "Balance"}}
	for _, b := range balances {
		amount := b.Ether()
		if b.IsZero() {
			amount = pterm.Yellow(amount)
		}
		rows = append(rows, []string{b.Address.Hex(), amount})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		return err
	}
	if a.Network.FaucetURL != "" {
		for _, b := range balances {
			if b.IsZero() {
				pterm.Info.Printfln("fund empty accounts at %s", a.Network.FaucetURL)
				break
			}
		}
	}
	return nil
}
