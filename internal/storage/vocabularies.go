package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bcanseco/rank-generator/internal/model"
	"github.com/bcanseco/rank-generator/internal/vocabulary"
	"github.com/google/uuid"
)

// Library errors.
var (
	ErrVocabularyNotFound  = errors.New("vocabulary not found in library")
	ErrDuplicateVocabulary = errors.New("vocabulary already exists in library")
)

// Word roles as stored in the words table.
const (
	rolePrefix  = "prefix"
	roleTitle   = "title"
	rolePostfix = "postfix"
)

// VocabularyInfo describes a stored vocabulary.
type VocabularyInfo struct {
	CreatedAt   time.Time
	ID          string
	Name        string
	Source      string
	Description string
	Prefixes    int
	Titles      int
	Postfixes   int
}

// SaveVocabulary stores vocab under name. Names are unique; replace removes
// an existing entry with the same name first.
func (s *SQLiteStorage) SaveVocabulary(ctx context.Context, info VocabularyInfo, vocab *vocabulary.Vocabulary, replace bool) (*VocabularyInfo, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateName(info.Name); err != nil {
		return nil, err
	}
	if err := validateVocabulary(vocab); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	existingID, err := vocabularyID(ctx, tx, info.Name)
	switch {
	case err == nil && !replace:
		err = fmt.Errorf("%w: %s", ErrDuplicateVocabulary, info.Name)
		return nil, err
	case err == nil:
		if err = deleteVocabularyTx(ctx, tx, existingID); err != nil {
			return nil, err
		}
	case !errors.Is(err, ErrVocabularyNotFound):
		return nil, err
	}

	saved := info
	saved.ID = uuid.NewString()
	saved.CreatedAt = time.Now().UTC()
	saved.Prefixes = len(vocab.Prefixes)
	saved.Titles = len(vocab.Titles)
	saved.Postfixes = len(vocab.Postfixes)

	_, err = tx.ExecContext(ctx, `
		INSERT INTO vocabularies (id, name, source, description, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		saved.ID, saved.Name, saved.Source, saved.Description, saved.CreatedAt)
	if err != nil {
		err = fmt.Errorf("failed to insert vocabulary: %w", err)
		return nil, err
	}

	lists := []struct {
		role  string
		words []*model.Word
	}{
		{role: rolePrefix, words: vocab.Prefixes},
		{role: roleTitle, words: vocab.Titles},
		{role: rolePostfix, words: vocab.Postfixes},
	}
	for _, list := range lists {
		if err = insertWords(ctx, tx, saved.ID, list.role, list.words); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		err = fmt.Errorf("failed to commit vocabulary: %w", err)
		return nil, err
	}

	slog.Info("Saved vocabulary",
		"name", saved.Name,
		"id", saved.ID,
		"words", vocab.Size())

	return &saved, nil
}

// LoadVocabulary reads the word lists stored under name, in their original order.
func (s *SQLiteStorage) LoadVocabulary(ctx context.Context, name string) (*vocabulary.Vocabulary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	id, err := vocabularyID(ctx, s.db, name)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT role, phrase, tier, minimum_tier, maximum_tier,
		       restrict_categories, categories, whitelist, blacklist
		FROM words
		WHERE vocabulary_id = ?
		ORDER BY role, position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	vocab := &vocabulary.Vocabulary{
		Prefixes:  []*model.Word{},
		Titles:    []*model.Word{},
		Postfixes: []*model.Word{},
	}

	for rows.Next() {
		var (
			role                             string
			word                             model.Word
			minimumTier, maximumTier         sql.NullInt64
			categories, whitelist, blacklist sql.NullString
		)
		if err := rows.Scan(&role, &word.Phrase, &word.Tier, &minimumTier, &maximumTier,
			&word.RestrictCategories, &categories, &whitelist, &blacklist); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}

		word.MinimumTier = fromNullInt(minimumTier)
		word.MaximumTier = fromNullInt(maximumTier)
		if word.Categories, err = decodeList(categories); err != nil {
			return nil, err
		}
		if word.Whitelist, err = decodeList(whitelist); err != nil {
			return nil, err
		}
		if word.Blacklist, err = decodeList(blacklist); err != nil {
			return nil, err
		}

		switch role {
		case rolePrefix:
			vocab.Prefixes = append(vocab.Prefixes, &word)
		case roleTitle:
			vocab.Titles = append(vocab.Titles, &word)
		case rolePostfix:
			vocab.Postfixes = append(vocab.Postfixes, &word)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating words: %w", err)
	}

	slog.Debug("loaded vocabulary from library", "name", name, "words", vocab.Size())
	return vocab, nil
}

// GetVocabulary returns the metadata for one stored vocabulary.
func (s *SQLiteStorage) GetVocabulary(ctx context.Context, name string) (*VocabularyInfo, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	infos, err := s.queryInfos(ctx, "WHERE v.name = ?", name)
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrVocabularyNotFound, name)
	}
	return &infos[0], nil
}

// ListVocabularies returns every stored vocabulary ordered by name.
func (s *SQLiteStorage) ListVocabularies(ctx context.Context) ([]VocabularyInfo, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.queryInfos(ctx, "")
}

// DeleteVocabulary removes a stored vocabulary and its words.
func (s *SQLiteStorage) DeleteVocabulary(ctx context.Context, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	id, err := vocabularyID(ctx, tx, name)
	if err != nil {
		return err
	}
	if err := deleteVocabularyTx(ctx, tx, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	slog.Info("Deleted vocabulary", "name", name)
	return nil
}

func (s *SQLiteStorage) queryInfos(ctx context.Context, where string, args ...any) ([]VocabularyInfo, error) {
	query := `
		SELECT v.id, v.name, COALESCE(v.source, ''), COALESCE(v.description, ''), v.created_at,
		       COALESCE(SUM(CASE WHEN w.role = 'prefix' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN w.role = 'title' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN w.role = 'postfix' THEN 1 ELSE 0 END), 0)
		FROM vocabularies v
		LEFT JOIN words w ON w.vocabulary_id = v.id
		` + where + `
		GROUP BY v.id
		ORDER BY v.name`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vocabularies: %w", err)
	}
	defer rows.Close()

	var infos []VocabularyInfo
	for rows.Next() {
		var info VocabularyInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.Source, &info.Description, &info.CreatedAt,
			&info.Prefixes, &info.Titles, &info.Postfixes); err != nil {
			return nil, fmt.Errorf("failed to scan vocabulary: %w", err)
		}
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vocabularies: %w", err)
	}

	return infos, nil
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func vocabularyID(ctx context.Context, q queryer, name string) (string, error) {
	var id string
	err := q.QueryRowContext(ctx, `SELECT id FROM vocabularies WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrVocabularyNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("failed to query vocabulary: %w", err)
	}
	return id, nil
}

func deleteVocabularyTx(ctx context.Context, tx *sql.Tx, id string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM words WHERE vocabulary_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete words: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM vocabularies WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete vocabulary: %w", err)
	}
	return nil
}

func insertWords(ctx context.Context, tx *sql.Tx, vocabularyID, role string, words []*model.Word) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO words (vocabulary_id, role, position, phrase, tier, minimum_tier, maximum_tier,
		                   restrict_categories, categories, whitelist, blacklist)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare word insert: %w", err)
	}
	defer stmt.Close()

	for i, w := range words {
		categories, err := encodeList(w.Categories)
		if err != nil {
			return err
		}
		whitelist, err := encodeList(w.Whitelist)
		if err != nil {
			return err
		}
		blacklist, err := encodeList(w.Blacklist)
		if err != nil {
			return err
		}

		if _, err := stmt.ExecContext(ctx, vocabularyID, role, i, w.Phrase, w.Tier,
			toNullInt(w.MinimumTier), toNullInt(w.MaximumTier), w.RestrictCategories,
			categories, whitelist, blacklist); err != nil {
			return fmt.Errorf("failed to insert %s %q: %w", role, w.Phrase, err)
		}
	}

	return nil
}

// encodeList stores nil as NULL so unset whitelists survive a round trip.
func encodeList(values []string) (sql.NullString, error) {
	if values == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("failed to encode list: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func decodeList(value sql.NullString) ([]string, error) {
	if !value.Valid {
		return nil, nil
	}
	values := []string{}
	if err := json.Unmarshal([]byte(value.String), &values); err != nil {
		return nil, fmt.Errorf("failed to decode list: %w", err)
	}
	return values, nil
}

func toNullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func fromNullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
