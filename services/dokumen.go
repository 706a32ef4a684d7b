package services

import (
	"encoding/json"

	"gorm.io/datatypes"

	"pkl/models"
)

// EncodeDokumen marshals uploaded-document metadata into the JSON
// column stored on a registration. The metadata is persisted verbatim;
// file content is handled by the upload boundary.
func EncodeDokumen(dokumen map[string]models.DokumenInfo) (datatypes.JSON, error) {
	if len(dokumen) == 0 {
		return datatypes.JSON([]byte("{}")), nil
	}
	raw, err := json.Marshal(dokumen)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// DecodeDokumen unmarshals the stored document metadata.
func DecodeDokumen(raw datatypes.JSON) (map[string]models.DokumenInfo, error) {
	dokumen := make(map[string]models.DokumenInfo)
	if len(raw) == 0 {
		return dokumen, nil
	}
	if err := json.Unmarshal(raw, &dokumen); err != nil {
		return nil, err
	}
	return dokumen, nil
}
