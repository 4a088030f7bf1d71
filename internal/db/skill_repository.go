package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teralith/interlude/internal/model"
)

// SkillRepository хранит выученные скиллы персонажей. Уровни заточки
// (>99) лежат в той же колонке, что и обычные уровни.
type SkillRepository struct {
	db *pgxpool.Pool
}

// NewSkillRepository создаёт новый SkillRepository.
func NewSkillRepository(db *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{db: db}
}

// LoadByCharacterID загружает все скиллы персонажа для класса classIndex.
func (r *SkillRepository) LoadByCharacterID(ctx context.Context, charID int64, classIndex int32) ([]*model.SkillInfo, error) {
	rows, err := r.db.Query(ctx, `
		SELECT skill_id, skill_level
		FROM character_skills
		WHERE character_id = $1 AND class_index = $2
		ORDER BY skill_id
	`, charID, classIndex)
	if err != nil {
		return nil, fmt.Errorf("querying skills for character %d: %w", charID, err)
	}
	defer rows.Close()

	skills := make([]*model.SkillInfo, 0, 32)
	for rows.Next() {
		info := &model.SkillInfo{ClassIndex: classIndex}
		if err := rows.Scan(&info.SkillID, &info.Level); err != nil {
			return nil, fmt.Errorf("scanning skill row: %w", err)
		}
		skills = append(skills, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating skill rows: %w", err)
	}
	return skills, nil
}

// Save сохраняет все скиллы персонажа (полная перезапись класса).
func (r *SkillRepository) Save(ctx context.Context, charID int64, classIndex int32, skills []*model.SkillInfo) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM character_skills WHERE character_id = $1 AND class_index = $2`,
		charID, classIndex,
	); err != nil {
		return fmt.Errorf("deleting existing skills: %w", err)
	}

	for _, s := range skills {
		if _, err := tx.Exec(ctx,
			`INSERT INTO character_skills (character_id, skill_id, skill_level, class_index) VALUES ($1, $2, $3, $4)`,
			charID, s.SkillID, s.Level, classIndex,
		); err != nil {
			return fmt.Errorf("inserting skill %d: %w", s.SkillID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing skills save: %w", err)
	}
	return nil
}

// AddSkill добавляет или обновляет один скилл (UPSERT). Используется и
// при изучении, и при смене уровня заточки.
func (r *SkillRepository) AddSkill(ctx context.Context, charID int64, s *model.SkillInfo) error {
	if _, err := r.db.Exec(ctx, `
		INSERT INTO character_skills (character_id, skill_id, skill_level, class_index)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (character_id, skill_id, class_index)
		DO UPDATE SET skill_level = $3
	`, charID, s.SkillID, s.Level, s.ClassIndex); err != nil {
		return fmt.Errorf("upserting skill %d for character %d: %w", s.SkillID, charID, err)
	}
	return nil
}

// DeleteSkill удаляет один скилл.
func (r *SkillRepository) DeleteSkill(ctx context.Context, charID int64, skillID, classIndex int32) error {
	if _, err := r.db.Exec(ctx,
		`DELETE FROM character_skills WHERE character_id = $1 AND skill_id = $2 AND class_index = $3`,
		charID, skillID, classIndex,
	); err != nil {
		return fmt.Errorf("deleting skill %d for character %d: %w", skillID, charID, err)
	}
	return nil
}
