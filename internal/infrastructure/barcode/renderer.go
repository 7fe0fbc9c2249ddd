// Package barcode renderiza códigos de escaneo como imágenes PNG
// listas para etiquetar herramientas físicas.
package barcode

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/qr"
)

// Dimensiones de impresión de las etiquetas, en píxeles.
const (
	barcodeWidth  = 300
	barcodeHeight = 80
	qrSize        = 256
)

// Renderer genera imágenes PNG de códigos de barras y QR.
type Renderer struct{}

// NewRenderer construye el renderizador.
func NewRenderer() *Renderer { return &Renderer{} }

// RenderBarcode codifica value como Code 128 y devuelve el PNG.
func (r *Renderer) RenderBarcode(value string) ([]byte, error) {
	bc, err := code128.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("barcode: codificar %q: %w", value, err)
	}
	scaled, err := barcode.Scale(bc, barcodeWidth, barcodeHeight)
	if err != nil {
		return nil, fmt.Errorf("barcode: escalar: %w", err)
	}
	return encodePNG(scaled)
}

// RenderQR codifica value como QR y devuelve el PNG.
func (r *Renderer) RenderQR(value string) ([]byte, error) {
	qc, err := qr.Encode(value, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("barcode: codificar QR %q: %w", value, err)
	}
	scaled, err := barcode.Scale(qc, qrSize, qrSize)
	if err != nil {
		return nil, fmt.Errorf("barcode: escalar QR: %w", err)
	}
	return encodePNG(scaled)
}

func encodePNG(img barcode.Barcode) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("barcode: codificar PNG: %w", err)
	}
	return buf.Bytes(), nil
}
