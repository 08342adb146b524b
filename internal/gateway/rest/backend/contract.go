//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=backend_test
package backend

import (
	"context"

	"storefront/pkg/restclient"
)

type client interface {
	Request(ctx context.Context, path string, opts restclient.Options) (any, error)
}
