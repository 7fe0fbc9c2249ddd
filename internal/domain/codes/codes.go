// Package codes: generación determinística de códigos cortos de escaneo
// (barcode y QR) a partir de los atributos del ítem y el instante de creación.
// Algoritmo: SHA-256 sobre "marca|modelo|serie|timestamp[|sal]", prefijo de 8
// caracteres hexadecimales en mayúsculas. La variante QR antepone el literal
// "INV-". La unicidad global se verifica antes de persistir (capa de aplicación).
package codes

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// QRPrefix prefijo literal de los códigos QR.
const QRPrefix = "INV-"

// codeLen longitud del código corto (caracteres hex).
const codeLen = 8

// Barcode genera el código corto de barras para los atributos dados en el
// instante indicado. Determinístico: mismos atributos + mismo instante → mismo código.
func Barcode(brand, model, serial string, at time.Time) string {
	return shortHash(brand, model, serial, at, "")
}

// QRCode genera el código QR (código corto con prefijo) para los atributos dados.
func QRCode(brand, model, serial string, at time.Time) string {
	return QRPrefix + shortHash(brand, model, serial, at, "")
}

// BulkBarcode genera un código corto con sal aleatoria, para generación masiva
// donde varios ítems pueden compartir el mismo instante.
func BulkBarcode(brand, model, serial string, at time.Time) (string, error) {
	salt, err := randomSalt()
	if err != nil {
		return "", err
	}
	return shortHash(brand, model, serial, at, salt), nil
}

// BulkQRCode variante QR de BulkBarcode.
func BulkQRCode(brand, model, serial string, at time.Time) (string, error) {
	code, err := BulkBarcode(brand, model, serial, at)
	if err != nil {
		return "", err
	}
	return QRPrefix + code, nil
}

func shortHash(brand, model, serial string, at time.Time, salt string) string {
	input := fmt.Sprintf("%s|%s|%s|%d", brand, model, serial, at.UnixNano())
	if salt != "" {
		input += "|" + salt
	}
	sum := sha256.Sum256([]byte(input))
	return strings.ToUpper(hex.EncodeToString(sum[:]))[:codeLen]
}

func randomSalt() (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("codes: sal aleatoria: %w", err)
	}
	return hex.EncodeToString(b[:]), nil
}
