package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	FirstName    string     `gorm:"size:20" json:"firstName"`
	LastName     string     `gorm:"size:30" json:"lastName"`
	Email        string     `gorm:"uniqueIndex;size:191;not null" json:"email"` // 存小写，比较不区分大小写
	PasswordHash string     `gorm:"size:300;not null" json:"-"`
	DOB          *time.Time `gorm:"column:dob" json:"dob,omitempty"`
	Role         string     `gorm:"size:16;not null;default:user" json:"role"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"-"`
}

func (User) TableName() string { return "users" }

// Identity 请求内的调用者身份（由 token 解析得到，显式传递，不走全局状态）
type Identity struct {
	UserID uint
	Email  string
	Role   string
}

func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

type UserRepository interface {
	Create(u *User) error
	FindByID(id uint) (*User, error)
	FindByEmail(email string) (*User, error)
	ExistsByEmail(email string) (bool, error)
	List() ([]User, error)
	Update(u *User) error
	// DeleteCascade 连带删除用户的评论、购物车、订单与交易记录
	DeleteCascade(id uint) error
}
