// Package domain defines the persistence models for kids, chores, rewards,
// users, and the completion/award records that link them. These types are
// mapped with GORM and form the core data layer of the chore tracker.
package domain

import "time"

// Kid represents a household member who completes chores and receives rewards.
type Kid struct {
	ID   uint   `json:"id"   gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(255);not null;index"`
}

// TableName returns the database table name for Kid.
func (Kid) TableName() string { return "kids" }

// Chore is a task with a point value. Points may be any integer; the model
// deliberately does not enforce positivity.
type Chore struct {
	ID     uint   `json:"id"     gorm:"primaryKey"`
	Name   string `json:"name"   gorm:"type:varchar(255);not null;index"`
	Points int    `json:"points" gorm:"not null"`
}

// TableName returns the database table name for Chore.
func (Chore) TableName() string { return "chores" }

// Reward is a redeemable item with a point cost.
type Reward struct {
	ID     uint   `json:"id"     gorm:"primaryKey"`
	Name   string `json:"name"   gorm:"type:varchar(255);not null;index"`
	Points int    `json:"points" gorm:"not null"`
}

// TableName returns the database table name for Reward.
func (Reward) TableName() string { return "rewards" }

// User is an API account. HashedPassword holds a bcrypt hash and is never
// serialized; the wire shape is produced by an explicit converter in the
// handlers package.
type User struct {
	ID             uint   `json:"id"       gorm:"primaryKey"`
	Username       string `json:"username" gorm:"type:varchar(50);not null;uniqueIndex"`
	HashedPassword string `json:"-"        gorm:"type:varchar(255);not null"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// KidChore records one completion of a chore by a kid. A kid may complete the
// same chore many times, so (kid_id, chore_id) is intentionally not unique.
//
// KidID and ChoreID are indexed but carry no enforced FK constraint: deleting
// a chore leaves existing completion rows pointing at the removed id, matching
// the reference storage behavior.
type KidChore struct {
	ID          uint      `json:"id"           gorm:"primaryKey"`
	KidID       uint      `json:"kid_id"       gorm:"not null;index"`
	ChoreID     uint      `json:"chore_id"     gorm:"not null;index"`
	CompletedAt time.Time `json:"completed_at" gorm:"not null"`
}

// TableName returns the database table name for KidChore.
func (KidChore) TableName() string { return "kid_chores" }

// KidReward records one award of a reward to a kid. Like KidChore, rows are
// append-only events and not unique per (kid_id, reward_id).
type KidReward struct {
	ID        uint      `json:"id"         gorm:"primaryKey"`
	KidID     uint      `json:"kid_id"     gorm:"not null;index"`
	RewardID  uint      `json:"reward_id"  gorm:"not null;index"`
	AwardedAt time.Time `json:"awarded_at" gorm:"not null"`
}

// TableName returns the database table name for KidReward.
func (KidReward) TableName() string { return "kid_rewards" }
