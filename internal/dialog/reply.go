package dialog

// Reply — исходящее сообщение диалога. Buttons — ряды reply-клавиатуры;
// nil оставляет клавиатуру чата без изменений.
type Reply struct {
	Text    string
	Buttons [][]string
}

func mainKeyboard() [][]string {
	return [][]string{
		{BtnBook},
		{BtnMyBookings},
	}
}

func (m *Manager) servicesKeyboard() [][]string {
	rows := make([][]string, 0, len(m.services)+1)
	for _, s := range m.services {
		rows = append(rows, []string{s})
	}
	return append(rows, []string{BtnBack})
}

// datesKeyboard — ближайшие 7 дат по две в ряд.
func datesKeyboard(dates []string) [][]string {
	var rows [][]string
	for i := 0; i < len(dates); i += 2 {
		row := []string{dates[i]}
		if i+1 < len(dates) {
			row = append(row, dates[i+1])
		}
		rows = append(rows, row)
	}
	return append(rows, []string{BtnBack})
}

// timesKeyboard — свободное время по три в ряд; при полном отсутствии
// слотов вместо выбора показывается явный признак.
func timesKeyboard(available []string) [][]string {
	var rows [][]string
	for i := 0; i < len(available); i += 3 {
		end := i + 3
		if end > len(available) {
			end = len(available)
		}
		rows = append(rows, available[i:end])
	}
	if len(rows) == 0 {
		rows = [][]string{{NoSlotsLabel}}
	}
	return append(rows, []string{BtnBack})
}

func confirmKeyboard() [][]string {
	return [][]string{{BtnConfirm, BtnCancel}}
}
