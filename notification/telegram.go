// Package notification 通过 Telegram 发送文本和渲染后的图表
package notification

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tb "gopkg.in/tucnak/telebot.v2"

	"github.com/rodrigo-brito/ninjaplot/service"
	"github.com/rodrigo-brito/ninjaplot/tools/log"
)

var _ service.Notifier = (*Telegram)(nil)

var ErrNoUsers = errors.New("telegram: no users configured")

// sender 是 telebot 中发送消息的部分
type sender interface {
	Send(to tb.Recipient, what interface{}, options ...interface{}) (*tb.Message, error)
}

// Telegram 把消息发送给所有配置的用户
type Telegram struct {
	client sender
	users  []int
}

// NewTelegram 使用机器人 token 创建通知器，users 为接收消息的用户编号
func NewTelegram(token string, users ...int) (*Telegram, error) {
	if len(users) == 0 {
		return nil, ErrNoUsers
	}

	client, err := tb.NewBot(tb.Settings{
		ParseMode: tb.ModeMarkdown,
		Token:     token,
		Poller:    &tb.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}

	return newTelegram(client, users), nil
}

func newTelegram(client sender, users []int) *Telegram {
	return &Telegram{client: client, users: users}
}

// Notify 发送文本消息，失败只记录日志
func (t Telegram) Notify(text string) {
	for _, user := range t.users {
		_, err := t.client.Send(&tb.User{ID: int64(user)}, text)
		if err != nil {
			log.Error(err)
		}
	}
}

// chartFile 位图作为照片发送，svg、pdf 等其他格式作为文件发送
func chartFile(path, caption string) interface{} {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
		return &tb.Photo{File: tb.FromDisk(path), Caption: caption}
	default:
		return &tb.Document{File: tb.FromDisk(path), FileName: filepath.Base(path), Caption: caption}
	}
}

// SendChart 发送渲染好的图表文件
func (t Telegram) SendChart(path, caption string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("telegram: %w", err)
	}

	for _, user := range t.users {
		if _, err := t.client.Send(&tb.User{ID: int64(user)}, chartFile(path, caption)); err != nil {
			return fmt.Errorf("telegram: send chart to %d: %w", user, err)
		}
	}
	return nil
}
