package services

import (
	"log"

	"blogapi/internal/models"
	"blogapi/internal/repositories"
	"blogapi/internal/schemas"
)

// PostService handles business logic related to posts.
type PostService struct {
	repo      repositories.PostRepository
	publisher EventPublisher
}

// NewPostService creates a new PostService. publisher may be nil.
func NewPostService(repo repositories.PostRepository, publisher EventPublisher) *PostService {
	return &PostService{
		repo:      repo,
		publisher: publisher,
	}
}

// CreatePost persists a new post owned by userID.
func (s *PostService) CreatePost(userID uint, req *schemas.CreatePostRequest) (*models.Post, error) {
	isPublished := false
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	post := &models.Post{
		Title:       req.Title,
		Content:     req.Content,
		UserID:      userID,
		IsPublished: isPublished,
	}

	if err := s.repo.Create(post); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishEvent("post.created", schemas.ToPostResponse(post)); err != nil {
			log.Printf("Warning: failed to publish post.created event: %v", err)
		}
	}

	return post, nil
}

// ListPosts returns one page of posts together with the pagination
// metadata. Defaults (page=1, limit=10) are applied here.
func (s *PostService) ListPosts(params schemas.PaginationParams) (*schemas.Paginated, error) {
	params.Normalize()

	total, err := s.repo.Count()
	if err != nil {
		return nil, err
	}

	posts, err := s.repo.GetAll(params.Page, params.Limit)
	if err != nil {
		return nil, err
	}

	paginated := schemas.NewPaginated(schemas.ToPostResponses(posts), params.Page, params.Limit, total)
	return &paginated, nil
}

// GetPost retrieves a single post by ID.
func (s *PostService) GetPost(id uint) (*models.Post, error) {
	return s.repo.GetByID(id)
}

// UpdatePost applies a partial update to a post.
func (s *PostService) UpdatePost(id uint, req *schemas.UpdatePostRequest) (*models.Post, error) {
	return s.repo.Update(id, req)
}

// DeletePost removes a post by ID. The boolean reports whether it existed.
func (s *PostService) DeletePost(id uint) (bool, error) {
	return s.repo.Delete(id)
}
