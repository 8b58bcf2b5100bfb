package services

import (
	"errors"

	"github.com/crewdeck-dev/crewdeck/internal/models"
	"github.com/crewdeck-dev/crewdeck/internal/types"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProjectService is the single authority deciding whether an identity
// triple (user id, client id, global role) may see or mutate a
// project. Every project and roster operation goes through it.
type ProjectService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewProjectService(db *gorm.DB, logger *zap.Logger) *ProjectService {
	return &ProjectService{db: db, logger: logger}
}

// resolveProject loads a project and decides visibility. A project
// outside the requester's client is reported as not found, so
// cross-tenant probing cannot distinguish existence from absence.
// Visibility requires a membership on the project or the admin
// global role.
func (s *ProjectService) resolveProject(projectID uint, userID uint, clientID uint, role string) (*models.Project, error) {
	var project models.Project

	err := s.db.Preload("ProjectMemberships").Preload("ProjectMemberships.User").
		Where("id = ? AND client_id = ?", projectID, clientID).
		First(&project).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	isAssigned := false

	for _, membership := range project.ProjectMemberships {
		if membership.UserID == userID {
			isAssigned = true
			break
		}
	}

	if !isAssigned && role != types.GlobalRoleAdmin {
		return nil, ErrNoAccess
	}

	return &project, nil
}

// requireManage resolves visibility first, then checks mutation
// authority: an owner membership on the project or the admin global
// role.
func (s *ProjectService) requireManage(projectID uint, userID uint, clientID uint, role string) (*models.Project, error) {
	project, err := s.resolveProject(projectID, userID, clientID, role)

	if err != nil {
		return nil, err
	}

	if role == types.GlobalRoleAdmin {
		return project, nil
	}

	for _, membership := range project.ProjectMemberships {
		if membership.UserID == userID && membership.Role == types.ProjectRoleOwner {
			return project, nil
		}
	}

	return nil, ErrOwnerRequired
}

// Create registers a project in the requester's client and assigns
// the creator as its owner.
func (s *ProjectService) Create(name string, description string, userID uint, clientID uint) (*models.Project, error) {
	project := models.Project{
		Name:        name,
		Description: description,
		ClientID:    clientID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}

		membership := models.ProjectMembership{
			ProjectID: project.ID,
			UserID:    userID,
			Role:      types.ProjectRoleOwner,
		}

		return tx.Create(&membership).Error
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		zap.Uint("project_id", project.ID),
		zap.Uint("client_id", clientID),
		zap.Uint("user_id", userID))

	return &project, nil
}

// List returns the requester's project feed: every project in their
// client where they hold a membership, newest first. Unlike Get, the
// feed does not grant admins visibility into unassigned projects.
func (s *ProjectService) List(userID uint, clientID uint) ([]models.Project, error) {
	var projects []models.Project

	err := s.db.
		Where("client_id = ?", clientID).
		Where("id IN (SELECT project_id FROM project_memberships WHERE user_id = ? AND deleted_at IS NULL)", userID).
		Order("created_at DESC").
		Find(&projects).Error

	if err != nil {
		return nil, err
	}

	return projects, nil
}

// Get returns a single project with its memberships, subject to the
// visibility check.
func (s *ProjectService) Get(projectID uint, userID uint, clientID uint, role string) (*models.Project, error) {
	return s.resolveProject(projectID, userID, clientID, role)
}

// Update changes a project's name and description. Requires mutation
// authority.
func (s *ProjectService) Update(projectID uint, name string, description *string, userID uint, clientID uint, role string) (*models.Project, error) {
	project, err := s.requireManage(projectID, userID, clientID, role)

	if err != nil {
		return nil, err
	}

	if name != "" {
		project.Name = name
	}

	if description != nil {
		project.Description = *description
	}

	if err := s.db.Save(project).Error; err != nil {
		return nil, err
	}

	return project, nil
}

// Delete removes a project and its memberships. Memberships go first
// so the project row never references dangling assignments; both
// deletes run in one transaction.
func (s *ProjectService) Delete(projectID uint, userID uint, clientID uint, role string) error {
	project, err := s.requireManage(projectID, userID, clientID, role)

	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Memberships are removed for good so the (project, user)
		// pair never lingers in the unique index.
		if err := tx.Unscoped().Where("project_id = ?", project.ID).Delete(&models.ProjectMembership{}).Error; err != nil {
			return err
		}

		return tx.Delete(project).Error
	})

	if err != nil {
		return err
	}

	s.logger.Info("project deleted",
		zap.Uint("project_id", project.ID),
		zap.Uint("user_id", userID))

	return nil
}

// AssignUser adds a user from the project's client to the roster.
// Requires mutation authority. Assigning an already-assigned user is
// a conflict; there is no restriction on how many owners a project
// may have.
func (s *ProjectService) AssignUser(projectID uint, targetUserID uint, memberRole string, userID uint, clientID uint, role string) (*models.ProjectMembership, error) {
	if !types.ValidProjectRole(memberRole) {
		return nil, ErrInvalidRole
	}

	project, err := s.requireManage(projectID, userID, clientID, role)

	if err != nil {
		return nil, err
	}

	var target models.User

	err = s.db.Where("id = ? AND client_id = ?", targetUserID, clientID).First(&target).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var existing models.ProjectMembership

	err = s.db.Where("project_id = ? AND user_id = ?", project.ID, targetUserID).First(&existing).Error

	if err == nil {
		return nil, ErrAlreadyAssigned
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	membership := models.ProjectMembership{
		ProjectID: project.ID,
		UserID:    targetUserID,
		Role:      memberRole,
	}

	if err := s.db.Create(&membership).Error; err != nil {
		return nil, err
	}

	return &membership, nil
}

// UpdateMemberRole changes an assigned user's membership role.
// Requires mutation authority.
func (s *ProjectService) UpdateMemberRole(projectID uint, targetUserID uint, memberRole string, userID uint, clientID uint, role string) (*models.ProjectMembership, error) {
	if !types.ValidProjectRole(memberRole) {
		return nil, ErrInvalidRole
	}

	project, err := s.requireManage(projectID, userID, clientID, role)

	if err != nil {
		return nil, err
	}

	var membership models.ProjectMembership

	err = s.db.Where("project_id = ? AND user_id = ?", project.ID, targetUserID).First(&membership).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMembershipNotFound
		}
		return nil, err
	}

	membership.Role = memberRole

	if err := s.db.Save(&membership).Error; err != nil {
		return nil, err
	}

	return &membership, nil
}

// RemoveUser takes a user off the roster. Requires mutation
// authority. Owners may remove themselves; a project ending up with
// zero owners is not prevented. The membership row is deleted for
// good, so the same user can be assigned again later.
func (s *ProjectService) RemoveUser(projectID uint, targetUserID uint, userID uint, clientID uint, role string) error {
	project, err := s.requireManage(projectID, userID, clientID, role)

	if err != nil {
		return err
	}

	var membership models.ProjectMembership

	err = s.db.Where("project_id = ? AND user_id = ?", project.ID, targetUserID).First(&membership).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMembershipNotFound
		}
		return err
	}

	return s.db.Unscoped().Delete(&membership).Error
}

// ListMembers returns the roster for a project, subject to the
// visibility check.
func (s *ProjectService) ListMembers(projectID uint, userID uint, clientID uint, role string) ([]models.ProjectMembership, error) {
	project, err := s.resolveProject(projectID, userID, clientID, role)

	if err != nil {
		return nil, err
	}

	return project.ProjectMemberships, nil
}
