package furikana

import (
	"bytes"
	"compress/flate"
	"io"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/kotaroooo0/furikana/morphology"
)

// ストレージで解析結果を圧縮して扱う実装
type StorageRdbCompressedImpl struct {
	StorageRdbImpl
}

func NewStorageRdbCompressedImpl(db *sqlx.DB) StorageRdbCompressedImpl {
	return StorageRdbCompressedImpl{
		StorageRdbImpl: StorageRdbImpl{
			DB: db,
		},
	}
}

func (s StorageRdbCompressedImpl) GetAnalysis(text string) ([]morphology.MorphologyToken, bool, error) {
	var encoded EncodedAnalysis
	if err := s.DB.Get(&encoded, `select * from analyses where digest = ?`, digest(text)); err != nil {
		if isNoRows(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	b, err := decompress(encoded.Records)
	if err != nil {
		return nil, false, err
	}
	tokens, err := decode(b)
	if err != nil {
		return nil, false, err
	}
	return tokens, true, nil
}

func (s StorageRdbCompressedImpl) SaveAnalysis(text string, tokens []morphology.MorphologyToken) error {
	b, err := encode(tokens)
	if err != nil {
		return err
	}
	records, err := compress(b)
	if err != nil {
		return err
	}
	return s.upsert(EncodedAnalysis{Digest: digest(text), Body: text, Records: records})
}

func compress(b []byte) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	w, err := flate.NewWriter(buf, flate.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(b); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(b []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(b))
	defer r.Close()
	return io.ReadAll(r)
}
