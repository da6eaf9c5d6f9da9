package business

import (
	"context"
	"fmt"
	"time"

	businessRepo "pawhub/database/repository/business"
	"pawhub/models"
	"pawhub/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 72 * time.Hour

// DefaultBusinessService is the production BusinessService.
type DefaultBusinessService struct {
	Repo      businessRepo.BusinessRepository
	AuthCache *redis.Client
}

// Register validates signup data, checks for duplicates, hashes the
// password and persists the new provider account.
func (s *DefaultBusinessService) Register(req RegisterRequest) (*AuthResponse, error) {
	if req.BusinessName == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("business name, email and password are required")
	}
	if !models.ValidBusinessType(req.BusinessType) {
		return nil, fmt.Errorf("unknown business type %q", req.BusinessType)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters long")
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing business account", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a business account with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	businessObj := models.BusinessUser{
		ID:            uuid.New().String(),
		BusinessName:  req.BusinessName,
		BusinessType:  req.BusinessType,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
		PasswordHash:  string(hashedPassword),
	}

	token, err := utils.GenerateToken(businessObj.ID, businessObj.Email, utils.RoleBusiness, tokenDuration)
	if err != nil {
		utils.GetLogger().Error("Register: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	businessObj.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&businessObj); err != nil {
		utils.GetLogger().Error("Register: failed to create business account", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	s.cacheTokenHash(businessObj.ID, businessObj.TokenHash)

	return &AuthResponse{
		ID:           businessObj.ID,
		Token:        token,
		BusinessName: businessObj.BusinessName,
		BusinessType: businessObj.BusinessType,
		Email:        businessObj.Email,
	}, nil
}

// Authenticate verifies the email/password pair and issues a fresh token.
func (s *DefaultBusinessService) Authenticate(email, password string) (*AuthResponse, error) {
	businessRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch business account", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if businessRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(businessRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(businessRec.ID, businessRec.Email, utils.RoleBusiness, tokenDuration)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateSetDocument(businessRec.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		utils.GetLogger().Error("Authenticate: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	s.cacheTokenHash(businessRec.ID, tokenHash)

	return &AuthResponse{
		ID:           businessRec.ID,
		Token:        token,
		BusinessName: businessRec.BusinessName,
		BusinessType: businessRec.BusinessType,
		Email:        businessRec.Email,
	}, nil
}

// GetByID retrieves a business account.
func (s *DefaultBusinessService) GetByID(id string) (*models.BusinessUser, error) {
	businessRec, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, &models.StoreUnavailableError{Err: err}
	}
	if businessRec == nil {
		return nil, &models.NotFoundError{Kind: "business account", ID: id}
	}
	return businessRec, nil
}

// UpdateProfile applies a partial profile edit.
func (s *DefaultBusinessService) UpdateProfile(id string, req UpdateProfileRequest) (*models.BusinessUser, error) {
	set := bson.M{}
	if req.BusinessName != nil {
		if *req.BusinessName == "" {
			return nil, &models.ValidationError{Field: "businessName", Reason: "must not be empty"}
		}
		set["businessName"] = *req.BusinessName
	}
	if req.ContactNumber != nil {
		set["contactNumber"] = *req.ContactNumber
	}
	if req.Address != nil {
		set["address"] = *req.Address
	}
	if len(set) == 0 {
		return nil, &models.ValidationError{Field: "body", Reason: "no fields to update"}
	}

	if err := s.Repo.UpdateSetDocument(id, set); err != nil {
		return nil, &models.StoreUnavailableError{Err: err}
	}
	return s.GetByID(id)
}

// RevokeAuthToken clears the stored token hash, signing the account out.
func (s *DefaultBusinessService) RevokeAuthToken(id string) error {
	if err := s.Repo.UpdateSetDocument(id, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	if s.AuthCache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = s.AuthCache.Del(ctx, utils.AuthCachePrefix+id).Err()
	}
	return nil
}

// cacheTokenHash stores the token hash in the auth cache, best effort.
func (s *DefaultBusinessService) cacheTokenHash(id, tokenHash string) {
	if s.AuthCache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.AuthCache.Set(ctx, utils.AuthCachePrefix+id, tokenHash, time.Hour).Err(); err != nil {
		utils.GetLogger().Debug("auth cache write failed", zap.Error(err))
	}
}
