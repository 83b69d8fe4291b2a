package db

import (
	"context"
	"fmt"
	"time"

	"github.com/terraincognita07/utsav/internal/calendar"
	"github.com/terraincognita07/utsav/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NoteRepository is the SQLite-backed calendar.NoteStore.
type NoteRepository struct {
	database *gorm.DB
}

var _ calendar.NoteStore = (*NoteRepository)(nil)

func NewNoteRepository(database *gorm.DB) *NoteRepository {
	return &NoteRepository{database: database}
}

func (repo *NoteRepository) Note(ctx context.Context, date calendar.Date) (string, bool, error) {
	entry := models.Note{}
	result := repo.database.WithContext(ctx).
		Where("date = ?", date.ISO()).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return "", false, result.Error
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}
	return entry.Text, true, nil
}

func (repo *NoteRepository) SaveNote(ctx context.Context, date calendar.Date, note string) error {
	now := time.Now().UTC()
	entry := models.Note{
		Date:      date.ISO(),
		Text:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return repo.database.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"text", "updated_at"}),
	}).Create(&entry).Error
}

func (repo *NoteRepository) NotesBetween(ctx context.Context, from calendar.Date, to calendar.Date) (map[calendar.Date]string, error) {
	entries := make([]models.Note, 0)
	if err := repo.database.WithContext(ctx).
		Where("date >= ? AND date <= ?", from.ISO(), to.ISO()).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	notes := make(map[calendar.Date]string, len(entries))
	for _, entry := range entries {
		date, err := calendar.ParseISO(entry.Date)
		if err != nil {
			return nil, fmt.Errorf("stored note %d: %w", entry.ID, err)
		}
		notes[date] = entry.Text
	}
	return notes, nil
}

// All lists every stored note ascending by date.
func (repo *NoteRepository) All(ctx context.Context) ([]models.Note, error) {
	entries := make([]models.Note, 0)
	if err := repo.database.WithContext(ctx).Order("date ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
