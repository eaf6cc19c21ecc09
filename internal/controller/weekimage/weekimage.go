// Package weekimage рисует расписание на неделю картинкой для отправки ботом.
package weekimage

import (
	"bytes"
	"image/color"
	"os"
	"sync"

	"github.com/fogleman/gg"
	"github.com/olekhw/deputy_api/internal/dto"
	"github.com/olekhw/deputy_api/internal/schedule"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Константы размеров и отступов
const (
	imageWidth      = 1400
	imageHeight     = 900
	headerHeight    = 70
	leftLabelsWidth = 110
	cellPadding     = 6.0
	cardRadius      = 6.0
	totalDaysInWeek = 7
)

// Константы шрифтов
const (
	dayFontSize     = 22.0
	timeFontSize    = 16.0
	subjectFontSize = 18.0
	detailFontSize  = 14.0
)

// Цветовая схема
var (
	bgColor       = color.RGBA{245, 246, 248, 255}
	textColor     = color.RGBA{80, 85, 90, 220}
	gridLineColor = color.NRGBA{150, 150, 150, 255}
	evenDayColor  = color.NRGBA{240, 240, 240, 255}
	oddDayColor   = color.NRGBA{220, 220, 220, 255}

	cardOwnColor     = color.RGBA{133, 193, 85, 220}
	cardForeignColor = color.RGBA{200, 200, 200, 220}
	cardTextColor    = color.RGBA{20, 24, 28, 230}
)

// Шрифт с кириллицей подхватывается с диска, если он есть рядом с бинарём
const fontPath = "assets/fonts/DejaVuSans.ttf"

var (
	fontOnce   sync.Once
	cachedFont *opentype.Font
)

// setFontFace выставляет шрифт указанного размера или basicfont как fallback
func setFontFace(dc *gg.Context, size float64) {
	fontOnce.Do(func() {
		data, err := os.ReadFile(fontPath)
		if err != nil {
			return
		}
		parsed, err := opentype.Parse(data)
		if err != nil {
			return
		}
		cachedFont = parsed
	})

	if cachedFont != nil {
		face, err := opentype.NewFace(cachedFont, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			dc.SetFontFace(face)
			return
		}
	}

	dc.SetFontFace(basicfont.Face7x13)
}

// Render рисует сетку недели: колонки - дни, строки - слоты времени пар
func Render(week *dto.ScheduleWeek) ([]byte, error) {
	rows := len(week.CoupleTimes)
	if rows == 0 {
		rows = 1
	}

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()

	dayWidth := float64(imageWidth-leftLabelsWidth) / totalDaysInWeek
	rowHeight := float64(imageHeight-headerHeight) / float64(rows)

	drawTimeLabels(dc, week.CoupleTimes, rowHeight)

	for dayIndex, day := range week.ScheduleDays {
		if dayIndex >= totalDaysInWeek {
			break
		}

		x := float64(leftLabelsWidth) + float64(dayIndex)*dayWidth

		drawDayBackground(dc, x, dayWidth, dayIndex)
		drawDayHeader(dc, day.Date, x, dayWidth)

		for _, couple := range day.Couples {
			if couple.CoupleIndex < 0 || couple.CoupleIndex >= rows {
				continue
			}
			y := float64(headerHeight) + float64(couple.CoupleIndex)*rowHeight
			drawCoupleCard(dc, couple, x, y, dayWidth, rowHeight)
		}
	}

	drawGrid(dc, rows, dayWidth, rowHeight)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawTimeLabels рисует колонку со временем пар слева
func drawTimeLabels(dc *gg.Context, coupleTimes []string, rowHeight float64) {
	setFontFace(dc, timeFontSize)
	dc.SetColor(textColor)

	for index, label := range coupleTimes {
		y := float64(headerHeight) + float64(index)*rowHeight + rowHeight/2
		dc.DrawStringAnchored(label, float64(leftLabelsWidth)-10, y, 1, 0.5)
	}
}

// drawDayBackground рисует чередующийся фон колонки дня
func drawDayBackground(dc *gg.Context, x, dayWidth float64, dayIndex int) {
	if dayIndex%2 == 0 {
		dc.SetColor(evenDayColor)
	} else {
		dc.SetColor(oddDayColor)
	}
	dc.DrawRectangle(x, headerHeight, dayWidth, float64(imageHeight-headerHeight))
	dc.Fill()
}

// drawDayHeader рисует дату над колонкой дня
func drawDayHeader(dc *gg.Context, date string, x, dayWidth float64) {
	setFontFace(dc, dayFontSize)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(date, x+dayWidth/2, float64(headerHeight)/2, 0.5, 0.5)
}

// drawCoupleCard рисует карточку пары в ячейке сетки
func drawCoupleCard(dc *gg.Context, couple schedule.CoupleData, x, y, dayWidth, rowHeight float64) {
	cardX := x + cellPadding
	cardY := y + cellPadding
	cardW := dayWidth - cellPadding*2
	cardH := rowHeight - cellPadding*2

	if couple.IsMySubgroup {
		dc.SetColor(cardOwnColor)
	} else {
		dc.SetColor(cardForeignColor)
	}
	dc.DrawRoundedRectangle(cardX, cardY, cardW, cardH, cardRadius)
	dc.Fill()

	setFontFace(dc, subjectFontSize)
	dc.SetColor(cardTextColor)
	dc.DrawStringAnchored(truncate(couple.Subject, 18), cardX+8, cardY+18, 0, 0.5)

	setFontFace(dc, detailFontSize)
	detail := couple.SubjectType
	if couple.Cabinet != "" {
		detail += ", " + couple.Cabinet
	}
	dc.DrawStringAnchored(truncate(detail, 24), cardX+8, cardY+38, 0, 0.5)
}

// drawGrid рисует линии сетки поверх карточек
func drawGrid(dc *gg.Context, rows int, dayWidth, rowHeight float64) {
	dc.SetLineWidth(0.3)
	dc.SetColor(gridLineColor)

	for rowIndex := 0; rowIndex <= rows; rowIndex++ {
		y := float64(headerHeight) + float64(rowIndex)*rowHeight
		dc.DrawLine(leftLabelsWidth, y, imageWidth, y)
		dc.Stroke()
	}
	for dayIndex := 0; dayIndex <= totalDaysInWeek; dayIndex++ {
		x := float64(leftLabelsWidth) + float64(dayIndex)*dayWidth
		dc.DrawLine(x, headerHeight, x, imageHeight)
		dc.Stroke()
	}
}

// truncate обрезает строку до maxLen символов с многоточием
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}
