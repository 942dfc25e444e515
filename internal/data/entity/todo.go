package entity

import "time"

type Todo struct {
	ID      int64     `db:"id"`
	UserID  int64     `db:"user_id"`
	Content string    `db:"content"`
	Due     time.Time `db:"due"`
}
