package api

import (
	"io"
	"mime/multipart"
	"net/textproto"
)

// DocumentUpload - подготовленная multipart-форма загрузки документа
type DocumentUpload struct {
	DocumentType string
	FileName     string
	ContentType  string
	Size         int64
	Content      io.Reader
}

// ImageUpload - загрузка изображения профиля
type ImageUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// writeFilePart пишет файловую часть с явным Content-Type.
// CreateFormFile всегда ставит octet-stream, а сервер проверяет MIME.
func writeFilePart(w *multipart.Writer, field, fileName, contentType string, content io.Reader) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+fileName+`"`)
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, content)
	return err
}
