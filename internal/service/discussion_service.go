package service

import (
	"campus_lms_backend/internal/model"
	"campus_lms_backend/internal/repository"
	"campus_lms_backend/internal/util"
)

type DiscussionService struct {
	Repo *repository.DiscussionRepository
}

func NewDiscussionService(repo *repository.DiscussionRepository) *DiscussionService {
	return &DiscussionService{Repo: repo}
}

type ThreadRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (s *DiscussionService) CreateThread(courseID, authorID uint, req ThreadRequest) (*model.DiscussionThread, error) {
	thread := &model.DiscussionThread{
		CourseID: courseID,
		AuthorID: authorID,
		Title:    req.Title,
		Body:     req.Content,
	}
	if err := s.Repo.CreateThread(thread); err != nil {
		return nil, err
	}
	return thread, nil
}

func (s *DiscussionService) GetThread(threadID uint) (*model.DiscussionThread, error) {
	return s.Repo.FindThreadByID(threadID)
}

func (s *DiscussionService) ListThreads(courseID uint, page, limit int) ([]model.DiscussionThread, int64, error) {
	return s.Repo.ListThreads(courseID, page, limit)
}

// DeleteThread removes a thread with its replies. Only the author or a
// privileged caller may delete.
func (s *DiscussionService) DeleteThread(threadID, callerID uint, privileged bool) error {
	thread, err := s.Repo.FindThreadByID(threadID)
	if err != nil {
		return err
	}
	if thread.AuthorID != callerID && !privileged {
		return util.ErrPermissionDenied
	}
	return s.Repo.DeleteThread(threadID)
}

type ReplyRequest struct {
	Content string `json:"content" binding:"required"`
}

func (s *DiscussionService) CreateReply(threadID, authorID uint, req ReplyRequest) (*model.DiscussionReply, error) {
	if _, err := s.Repo.FindThreadByID(threadID); err != nil {
		return nil, err
	}
	reply := &model.DiscussionReply{
		ThreadID: threadID,
		AuthorID: authorID,
		Body:     req.Content,
	}
	if err := s.Repo.CreateReply(reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *DiscussionService) DeleteReply(replyID, callerID uint, privileged bool) error {
	reply, err := s.Repo.FindReplyByID(replyID)
	if err != nil {
		return err
	}
	if reply.AuthorID != callerID && !privileged {
		return util.ErrPermissionDenied
	}
	return s.Repo.DeleteReply(replyID)
}
