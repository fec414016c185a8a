package upload

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerai-web/internal/delivery/http/response"
	"careerai-web/internal/domain"
	"careerai-web/pkg/apperror"
	"careerai-web/pkg/security"
)

// ResumeField is the multipart field carrying the resume
const ResumeField = "resume"

// ReadResume turns the multipart resume part into a FileHandle. Only the
// leading bytes are read, for type detection; the content is discarded.
func ReadResume(c *gin.Context, maxUploadMB int) (domain.FileHandle, error) {
	header, err := c.FormFile(ResumeField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return domain.FileHandle{}, apperror.New(http.StatusRequestEntityTooLarge,
				fmt.Sprintf("File is larger than %dMB", maxUploadMB), err)
		}
		return domain.FileHandle{}, apperror.BadRequest("Please choose a file to upload")
	}
	if header.Size > int64(maxUploadMB)*1024*1024 {
		return domain.FileHandle{}, apperror.New(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File is larger than %dMB", maxUploadMB), nil)
	}

	file, err := header.Open()
	if err != nil {
		return domain.FileHandle{}, apperror.Internal(err)
	}
	defer file.Close()

	head := make([]byte, security.SniffLength)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return domain.FileHandle{}, apperror.Internal(err)
	}

	inspection := security.InspectFile(header.Filename, header.Header.Get("Content-Type"), head[:n])
	if inspection.Spoofed {
		security.DefaultLogger().LogUploadSpoofed(c.Request.Context(), c.ClientIP(), response.RequestID(c), inspection)
	}

	return domain.FileHandle{
		Name:      inspection.Filename,
		Size:      header.Size,
		MediaType: inspection.MediaType,
	}, nil
}
