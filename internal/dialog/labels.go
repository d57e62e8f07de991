package dialog

// Кнопки главного меню и шагов диалога. Сопоставление входящего текста
// идёт по точному совпадению с этими метками.
const (
	BtnBook       = "📅 Записатись"
	BtnMyBookings = "🧾 Мої записи"
	BtnBack       = "⬅️ Назад"
	BtnConfirm    = "✅ Підтвердити"
	BtnCancel     = "❌ Скасувати"

	// NoSlotsLabel показывается вместо пустой клавиатуры, когда на дату
	// не осталось свободного времени.
	NoSlotsLabel = "❌ Немає вільних слотів"
)

const (
	msgWelcome       = "👋 Привіт! Я бот для запису клієнтів.\nНатисни «📅 Записатись»."
	msgPressBook     = "Натисни «📅 Записатись» 🙂"
	msgBackToMenu    = "Повертаємось у меню."
	msgChooseService = "Обери послугу:"
	msgBadService    = "Обери послугу кнопкою 👇"
	msgChooseDate    = "📅 Обери дату:"
	msgBadDate       = "Обери дату кнопкою 👇"
	msgChooseTime    = "⏰ Обери час:"
	msgBadTime       = "Обери час кнопкою 👇"
	msgSlotTaken     = "❌ Цей час зайнятий. Обери інший:"
	msgSlotLost      = "❌ Цей час щойно зайняли. Обери інший:"
	msgAskName       = "✍️ Напиши своє ім’я:"
	msgNameTooShort  = "Ім’я занадто коротке."
	msgAskPhone      = "📞 Введи номер телефону:"
	msgBadPhone      = "Невірний номер. Приклад: +380991234567"
	msgPickButton    = "Обери кнопку 👇"
	msgSaved         = "🎉 Запис збережено! Адміну надіслано повідомлення."
	msgCancelled     = "❌ Скасовано."
	msgNoBookings    = "Записів ще немає."
	msgInternal      = "⚠️ Сталася помилка. Спробуй ще раз."
)
