package gateway

import (
	"context"
	"net/http"

	"github.com/petal-labs/herald/core"
)

// balancePath is the API endpoint for the account balance query.
const balancePath = "/cash/v1/balance"

// GetBalance returns the account balance.
func (g *Gateway) GetBalance(ctx context.Context) (*core.Balance, error) {
	var res core.Balance
	if err := g.do(ctx, core.OpGetBalance, http.MethodGet, balancePath, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
