package util

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/ferdian3456/jobboard/internal/constant"
	"github.com/ferdian3456/jobboard/internal/imaging"
	"github.com/ferdian3456/jobboard/internal/model"

	"github.com/gabriel-vasile/mimetype"
)

const allowedImageTypes = "jpeg, jpg, png, gif"

// ReadUpload reads a multipart file into memory. Files above the size limit
// are not read; only their size is kept so validation can reject them.
func ReadUpload(fileHeader *multipart.FileHeader) (model.Upload, error) {
	upload := model.Upload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
	}

	if fileHeader.Size > constant.MAX_FILE_SIZE {
		return upload, nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		return upload, err
	}
	defer src.Close()

	content, err := io.ReadAll(io.LimitReader(src, constant.MAX_FILE_SIZE+1))
	if err != nil {
		return upload, err
	}

	upload.Content = content
	upload.Size = int64(len(content))

	return upload, nil
}

// ValidateImage checks the size limit and sniffs the encoding from the bytes;
// the client supplied name and content type are ignored.
func ValidateImage(upload model.Upload, fieldName string) (imaging.Format, error) {
	size := upload.Size
	if size < int64(len(upload.Content)) {
		size = int64(len(upload.Content))
	}

	if size == 0 {
		return "", &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: fmt.Sprintf("The %s field is required.", fieldName),
			Param:   fieldName,
		}
	}

	if size > constant.MAX_FILE_SIZE {
		return "", &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: fmt.Sprintf("The %s field must not be greater than %d kilobytes.", fieldName, constant.MAX_FILE_SIZE/1024),
			Param:   fieldName,
		}
	}

	detected := mimetype.Detect(upload.Content)
	format, ok := imaging.FormatFromMIME(detected.String())
	if !ok {
		return "", &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: fmt.Sprintf("The %s field must be a file of type: %s.", fieldName, allowedImageTypes),
			Param:   fieldName,
		}
	}

	return format, nil
}
