package services

import (
	"fmt"

	"github.com/sbilibin2017/idea2context/internal/models"
)

// SystemPrompt frames the model as a technical architect writing in Russian.
const SystemPrompt = "Ты опытный технический архитектор и product manager. " +
	"Создаваешь детальные технические задания для разработки приложений на русском языке."

const promptTemplate = `Создай детальное техническое задание для разработки %s на основе следующей идеи: "%s"

Структура документа должна включать:
1. Обзор проекта с описанием идеи
2. Основные функции и возможности
3. Технологический стек (подходящий для %s)
4. Целевая аудитория
5. План разработки по этапам
6. Требования к безопасности
7. Метрики успеха

Ответ должен быть на русском языке в формате Markdown. Будь конкретным и практичным в рекомендациях.`

// BuildPrompt renders the user instruction for the generation API.
// The result depends only on idea and appType.
func BuildPrompt(idea string, appType models.AppType) string {
	subject, stack := "мобильного приложения", "мобильной разработки"
	if appType == models.AppTypeWeb {
		subject, stack = "веб-приложения", "веб-разработки"
	}
	return fmt.Sprintf(promptTemplate, subject, idea, stack)
}
