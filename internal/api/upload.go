package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/pasti-app/siswa-client/internal/dto"
	appErrors "github.com/pasti-app/siswa-client/pkg/errors"
)

// UploadFile sends one answer file as a multipart form and returns the remote
// URL assigned by the server.
func (c *Client) UploadFile(ctx context.Context, filename string, content io.Reader) (dto.UploadResponse, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return dto.UploadResponse{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build multipart form")
	}
	if _, err := io.Copy(part, content); err != nil {
		return dto.UploadResponse{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "read upload content")
	}
	if err := writer.Close(); err != nil {
		return dto.UploadResponse{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "finalise multipart form")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload/tugas", buf)
	if err != nil {
		return dto.UploadResponse{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.setCommonHeaders(req, true)

	envelope, err := c.send(req, "file_upload")
	if err != nil {
		return dto.UploadResponse{}, err
	}
	if !envelope.Success {
		message := envelope.Message
		if message == "" {
			message = "upload rejected"
		}
		return dto.UploadResponse{}, appErrors.Clone(appErrors.ErrRemoteData, message)
	}

	var out dto.UploadResponse
	if len(envelope.Data) == 0 {
		return dto.UploadResponse{}, appErrors.Clone(appErrors.ErrRemoteData, "upload response missing payload")
	}
	if err := json.Unmarshal(envelope.Data, &out); err != nil {
		return dto.UploadResponse{}, appErrors.Wrap(err, appErrors.ErrRemoteData.Code, appErrors.ErrRemoteData.Status, "decode upload response")
	}
	if out.URL == "" {
		return dto.UploadResponse{}, appErrors.Clone(appErrors.ErrRemoteData, fmt.Sprintf("upload response missing url for %q", filename))
	}
	return out, nil
}
