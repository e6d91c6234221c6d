package models

// MaxUploadSize is the maximum accepted image upload, enforced at the
// HTTP boundary.
const MaxUploadSize = 10 * 1024 * 1024

// SupportedExtensions lists the file extensions the demo UI advertises.
func SupportedExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".tiff", ".tif", ".bmp", ".dcm", ".dicom"}
}

// SupportedFormatTags lists the decoder format tags accepted by image
// validation. An absent tag is treated as acceptable.
func SupportedFormatTags() []string {
	return []string{"JPEG", "PNG", "TIFF", "BMP", "DICOM"}
}
