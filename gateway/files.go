package gateway

import (
	"context"
	"net/http"

	"github.com/petal-labs/herald/core"
)

// filesPath is the API endpoint for attachment uploads.
const filesPath = "/storage/v1/files"

// UploadFile registers a base64-encoded attachment with the provider.
// A provider rejection surfaces as core.ErrFileUpload with the provider's
// code and message preserved.
func (g *Gateway) UploadFile(ctx context.Context, req *core.FileUploadRequest) (*core.FileUploadResult, error) {
	var res core.FileUploadResult
	if err := g.do(ctx, core.OpUploadFile, http.MethodPost, filesPath, req, &res); err != nil {
		return nil, markUploadFailure(err)
	}
	return &res, nil
}
