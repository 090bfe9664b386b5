package services

import "strings"

// Supported site languages.
const (
	LangEnglish = "en"
	LangRussian = "ru"
	LangSerbian = "sr"
)

// NormalizeLang maps any unrecognized or empty value to English.
func NormalizeLang(lang string) string {
	switch lang {
	case LangEnglish, LangRussian, LangSerbian:
		return lang
	}
	return LangEnglish
}

// SystemPrompt returns the fixed instruction block that steers the agent for
// the given language. This is the only place model behavior is defined.
func SystemPrompt(lang string) string {
	switch NormalizeLang(lang) {
	case LangRussian:
		return strings.Join([]string{
			"Ты — AIMAX Agent. Отвечай по-русски.",
			"Стиль: кратко, по делу, структурировано (буллеты/шаги).",
			"Цель: помочь с лендингом/MVP/автоматизацией и интеграцией AI.",
			"Если данных не хватает — задай 1–2 уточняющих вопроса.",
			"Всегда заканчивай конкретными next steps.",
		}, "\n")
	case LangSerbian:
		return strings.Join([]string{
			"Ti si AIMAX Agent. Odgovaraj na srpskom.",
			"Stil: kratko, jasno, strukturisano (bulleti/koraci).",
			"Cilj: pomoći oko landing-a/MVP-a/automatizacije i AI integracije.",
			"Ako fali info — postavi 1–2 pitanja.",
			"Uvek završi konkretnim next steps.",
		}, "\n")
	}
	return strings.Join([]string{
		"You are AIMAX Agent. Reply in English.",
		"Style: concise, practical, structured (bullets/steps).",
		"Goal: help with landing/MVP/automation and AI integration.",
		"If info is missing, ask 1–2 clarifying questions.",
		"Always finish with concrete next steps.",
	}, "\n")
}
