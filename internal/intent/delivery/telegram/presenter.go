package telegram

import (
	"strconv"

	"mindbet-bot/internal/intent"
	pkgTelegram "mindbet-bot/pkg/telegram"
)

func callerFrom(u *pkgTelegram.User, chat *pkgTelegram.Chat) intent.Caller {
	return intent.Caller{
		TelegramID: u.ID,
		Username:   u.Username,
		FirstName:  u.FirstName,
		ChatID:     chat.ID,
		ChatType:   chat.Type,
	}
}

func chatKey(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}

// toKeyboard converts button rows to an inline keyboard, or nil when there are none.
func toKeyboard(rows [][]intent.Button) *pkgTelegram.InlineKeyboardMarkup {
	if len(rows) == 0 {
		return nil
	}

	markup := &pkgTelegram.InlineKeyboardMarkup{
		InlineKeyboard: make([][]pkgTelegram.InlineKeyboardButton, 0, len(rows)),
	}
	for _, row := range rows {
		buttons := make([]pkgTelegram.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, pkgTelegram.InlineKeyboardButton{
				Text:         b.Text,
				URL:          b.URL,
				CallbackData: b.CallbackData,
			})
		}
		markup.InlineKeyboard = append(markup.InlineKeyboard, buttons)
	}
	return markup
}
