package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/blockforge-backend/internal/contract/model"
)

const insertDeploymentQuery = `
INSERT INTO contract_deployments (
	id,
	network,
	contract_name,
	address,
	tx_hash,
	block_number,
	gas_used,
	explorer_url,
	source,
	abi,
	deployer,
	method,
	created_at
) VALUES`

// InsertDeployment stores a deployment record.
func (r *Repository) InsertDeployment(ctx context.Context, d model.Deployment) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_deployment", err, start)
	}()

	batch, err := r.conn.PrepareBatch(ctx, insertDeploymentQuery)
	if err != nil {
		return fmt.Errorf("prepare deployment batch: %w", err)
	}

	if err = batch.Append(
		d.ID,
		d.Network,
		d.ContractName,
		d.Address.Hex(),
		hashOrEmpty(d),
		d.BlockNumber,
		d.GasUsed,
		d.ExplorerURL,
		d.Source,
		d.ABI,
		deployerOrEmpty(d),
		string(d.Method),
		d.CreatedAt,
	); err != nil {
		_ = batch.Abort()
		return fmt.Errorf("append deployment: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert deployment: %w", err)
	}
	return nil
}

func hashOrEmpty(d model.Deployment) string {
	if d.TxHash == (common.Hash{}) {
		return ""
	}
	return d.TxHash.Hex()
}

func deployerOrEmpty(d model.Deployment) string {
	if d.Deployer == (common.Address{}) {
		return ""
	}
	return d.Deployer.Hex()
}
