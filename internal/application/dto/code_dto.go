package dto

// Estados por ítem del resultado de generación masiva de códigos.
const (
	CodeStatusGenerated = "generado"
	CodeStatusSkipped   = "omitido" // colisión: se continúa con el resto
	CodeStatusExisting  = "existente"
)

// CodeResponse códigos de escaneo de una herramienta.
type CodeResponse struct {
	ToolID  string `json:"herramienta"`
	Barcode string `json:"barcode,omitempty"`
	QRCode  string `json:"qrCode,omitempty"`
}

// BulkCodeResult resultado por ítem de la generación masiva.
type BulkCodeResult struct {
	ToolID   string `json:"herramienta"`
	ToolName string `json:"nombre"`
	Barcode  string `json:"barcode,omitempty"`
	QRCode   string `json:"qrCode,omitempty"`
	Status   string `json:"estado"` // generado | omitido | existente
}
