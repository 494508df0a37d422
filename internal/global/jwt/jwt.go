package jwt

import (
	"time"

	"capstone-panel-system/config"

	"github.com/golang-jwt/jwt"
)

// Claims 登录令牌携带的用户信息
type Claims struct {
	UserID     uint   `json:"user_id"`
	EmployeeID string `json:"employee_id"` // 工号
	Name       string `json:"name"`
	RoleID     int    `json:"role_id"`
	jwt.StandardClaims
}

// GenerateToken 签发访问令牌
func GenerateToken(userID uint, employeeID, name string, roleID int) (string, error) {
	cfg := config.Get()
	now := time.Now()
	claims := Claims{
		UserID:     userID,
		EmployeeID: employeeID,
		Name:       name,
		RoleID:     roleID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Duration(cfg.JWT.AccessExpire) * time.Second).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.AccessSecret))
}

// ParseToken 解析并校验访问令牌
func ParseToken(tokenStr string) (*Claims, bool) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.Get().JWT.AccessSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, false
	}
	return claims, true
}
