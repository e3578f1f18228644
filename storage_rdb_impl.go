package furikana

import (
	"bytes"
	"crypto/sha256"
	"database/sql"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/kotaroooo0/furikana/morphology"
)

func NewDBClient(dbConfig *DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(
		"mysql",
		fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbConfig.User, dbConfig.Password, dbConfig.Addr, dbConfig.Port, dbConfig.DB),
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

type DBConfig struct {
	User     string
	Password string
	Addr     string
	Port     string
	DB       string
}

func NewDBConfig(user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

// StorageRdbImpl stores analyses in MySQL, keyed by the SHA-256 of the text.
type StorageRdbImpl struct {
	DB *sqlx.DB
}

func NewStorageRdbImpl(db *sqlx.DB) *StorageRdbImpl {
	return &StorageRdbImpl{
		DB: db,
	}
}

const createAnalysesTable = `create table if not exists analyses (
	digest char(64) not null primary key,
	body text not null,
	records blob not null
)`

func (s *StorageRdbImpl) Migrate() error {
	_, err := s.DB.Exec(createAnalysesTable)
	return err
}

type EncodedAnalysis struct {
	Digest  string `db:"digest"`  // テキストのハッシュ
	Body    string `db:"body"`    // 解析したテキスト
	Records []byte `db:"records"` // Gobでシリアライズした解析結果
}

func digest(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func (s *StorageRdbImpl) GetAnalysis(text string) ([]morphology.MorphologyToken, bool, error) {
	var encoded EncodedAnalysis
	if err := s.DB.Get(&encoded, `select * from analyses where digest = ?`, digest(text)); err != nil {
		if isNoRows(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	tokens, err := decode(encoded.Records)
	if err != nil {
		return nil, false, err
	}
	return tokens, true, nil
}

func (s *StorageRdbImpl) SaveAnalysis(text string, tokens []morphology.MorphologyToken) error {
	records, err := encode(tokens)
	if err != nil {
		return err
	}
	return s.upsert(EncodedAnalysis{Digest: digest(text), Body: text, Records: records})
}

func (s *StorageRdbImpl) upsert(encoded EncodedAnalysis) error {
	_, err := s.DB.NamedExec(
		`insert into analyses (digest, body, records)
		values (:digest, :body, :records)
		on duplicate key update records = :records`,
		encoded)
	return err
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func (s *StorageRdbImpl) CountAnalyses() (int, error) {
	var count int
	row := s.DB.QueryRow(`select count(*) from analyses`)
	if err := row.Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}

func encode(tokens []morphology.MorphologyToken) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := gob.NewEncoder(buf).Encode(tokens); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(b []byte) ([]morphology.MorphologyToken, error) {
	var tokens []morphology.MorphologyToken
	if err := gob.NewDecoder(bytes.NewBuffer(b)).Decode(&tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}
