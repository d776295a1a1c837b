package repository

import (
	"campus_lms_backend/internal/model"

	"gorm.io/gorm"
)

type DiscussionRepository struct {
	DB *gorm.DB
}

func NewDiscussionRepository(db *gorm.DB) *DiscussionRepository {
	return &DiscussionRepository{DB: db}
}

func (r *DiscussionRepository) CreateThread(thread *model.DiscussionThread) error {
	return r.DB.Create(thread).Error
}

func (r *DiscussionRepository) FindThreadByID(id uint) (*model.DiscussionThread, error) {
	var thread model.DiscussionThread
	err := r.DB.Preload("Replies", func(db *gorm.DB) *gorm.DB {
		return db.Order("discussion_replies.created_at ASC")
	}).First(&thread, id).Error
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

func (r *DiscussionRepository) ListThreads(courseID uint, page, limit int) ([]model.DiscussionThread, int64, error) {
	var threads []model.DiscussionThread
	var total int64

	base := r.DB.Model(&model.DiscussionThread{}).Where("course_id = ?", courseID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := base.Order("is_pinned DESC, created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&threads).Error
	return threads, total, err
}

func (r *DiscussionRepository) DeleteThread(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("thread_id = ?", id).Delete(&model.DiscussionReply{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.DiscussionThread{}, id).Error
	})
}

func (r *DiscussionRepository) CreateReply(reply *model.DiscussionReply) error {
	return r.DB.Create(reply).Error
}

func (r *DiscussionRepository) FindReplyByID(id uint) (*model.DiscussionReply, error) {
	var reply model.DiscussionReply
	if err := r.DB.First(&reply, id).Error; err != nil {
		return nil, err
	}
	return &reply, nil
}

func (r *DiscussionRepository) DeleteReply(id uint) error {
	return r.DB.Delete(&model.DiscussionReply{}, id).Error
}
