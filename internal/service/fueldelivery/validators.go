package fueldelivery

import (
	"encoding/base64"
	"strings"
)

func isValidEmployeeName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// decodeImagePayload принимает data-URI ("data:image/png;base64,....")
// либо голый base64 и возвращает байты картинки.
func decodeImagePayload(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, ErrInvalidImagePayload
	}

	if idx := strings.IndexByte(payload, ','); idx >= 0 {
		payload = payload[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(data) == 0 {
		return nil, ErrInvalidImagePayload
	}
	return data, nil
}
