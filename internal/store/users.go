package store

import (
	"errors"
	"time"

	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"mycart_back_end/internal/database"
	"mycart_back_end/internal/models"
)

var (
	ErrEmailTaken = errors.New("email déjà enregistré")
	ErrPhoneTaken = errors.New("numéro de téléphone déjà enregistré")
)

// CreateUser enregistre un utilisateur. L'unicité email/téléphone est portée
// par les tables de lookup users_by_email / users_by_phone, insérées en LWT
// (IF NOT EXISTS) — l'équivalent ScyllaDB des contraintes uniques.
func CreateUser(u *models.User) error {
	session, err := database.GetUsersSession()
	if err != nil {
		return err
	}

	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	userUUID, err := gocql.ParseUUID(u.ID)
	if err != nil {
		return err
	}

	applied, err := session.Query(
		"INSERT INTO users_by_email (email, user_id) VALUES (?, ?) IF NOT EXISTS",
		u.Email, userUUID).ScanCAS(nil, nil)
	if err != nil {
		return err
	}
	if !applied {
		return ErrEmailTaken
	}

	applied, err = session.Query(
		"INSERT INTO users_by_phone (phone, user_id) VALUES (?, ?) IF NOT EXISTS",
		u.Phone, userUUID).ScanCAS(nil, nil)
	if err != nil || !applied {
		// on libère l'email réservé avant de signaler le doublon
		session.Query("DELETE FROM users_by_email WHERE email = ?", u.Email).Exec()
		if err != nil {
			return err
		}
		return ErrPhoneTaken
	}

	return session.Query(
		`INSERT INTO users (user_id, email, username, phone, password, otp, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		userUUID, u.Email, u.Username, u.Phone, u.Password, u.OTP, u.CreatedAt).Exec()
}

func GetUserByID(id string) (models.User, error) {
	var u models.User

	session, err := database.GetUsersSession()
	if err != nil {
		return u, err
	}

	userUUID, err := gocql.ParseUUID(id)
	if err != nil {
		return u, err
	}

	err = session.Query(
		"SELECT email, username, phone, password, otp, created_at FROM users WHERE user_id = ?",
		userUUID).Scan(&u.Email, &u.Username, &u.Phone, &u.Password, &u.OTP, &u.CreatedAt)
	if err != nil {
		return u, err
	}
	u.ID = id
	return u, nil
}

func GetUserByEmail(email string) (models.User, error) {
	session, err := database.GetUsersSession()
	if err != nil {
		return models.User{}, err
	}

	var userUUID gocql.UUID
	if err := session.Query("SELECT user_id FROM users_by_email WHERE email = ?", email).
		Scan(&userUUID); err != nil {
		return models.User{}, err
	}
	return GetUserByID(userUUID.String())
}

// GetUserByPhone résout un numéro de téléphone vers l'utilisateur — le flux
// de mot de passe oublié s'identifie par téléphone, pas par email.
func GetUserByPhone(phone string) (models.User, error) {
	session, err := database.GetUsersSession()
	if err != nil {
		return models.User{}, err
	}

	var userUUID gocql.UUID
	if err := session.Query("SELECT user_id FROM users_by_phone WHERE phone = ?", phone).
		Scan(&userUUID); err != nil {
		return models.User{}, err
	}
	return GetUserByID(userUUID.String())
}

func UpdatePassword(userID, hash string) error {
	session, err := database.GetUsersSession()
	if err != nil {
		return err
	}

	userUUID, err := gocql.ParseUUID(userID)
	if err != nil {
		return err
	}

	return session.Query("UPDATE users SET password = ? WHERE user_id = ?",
		hash, userUUID).Exec()
}
