package services

import (
	"fmt"

	"github.com/sbilibin2017/idea2context/internal/models"
)

// Section headers present in every fallback document.
var FallbackSections = []string{
	"## Обзор проекта",
	"## Основные функции и возможности",
	"## Технологический стек",
	"## Целевая аудитория",
	"## План разработки",
	"## Требования к безопасности",
	"## Метрики успеха",
}

const webStack = `### Frontend
- **React** - основная библиотека для создания пользовательского интерфейса
- **Next.js** - фреймворк для серверного рендеринга и SEO оптимизации
- **TypeScript** - типизированный JavaScript для лучшей разработки
- **Tailwind CSS** - утилитарный CSS фреймворк для быстрой стилизации

### Backend
- **Node.js** - серверная среда выполнения JavaScript
- **Express.js** или **Next.js API Routes** - для создания RESTful API
- **PostgreSQL** или **MongoDB** - база данных для хранения информации

### Дополнительные инструменты
- **Vercel** или **Netlify** - для деплоя и хостинга
- **Prisma** или **Mongoose** - ORM для работы с базой данных`

const mobileStack = `### Mobile Development
- **React Native** - кроссплатформенная разработка для iOS и Android
- **TypeScript** - типизированный JavaScript
- **Expo** - платформа для быстрой разработки и деплоя

### Backend
- **Node.js** - серверная среда выполнения
- **Express.js** - веб-фреймворк для API
- **PostgreSQL** или **MongoDB** - база данных

### Дополнительные инструменты
- **Firebase** - для аутентификации и push-уведомлений
- **App Store Connect** и **Google Play Console** - для публикации приложений`

const fallbackTemplate = `# %[1]s: Техническое задание

## Обзор проекта

**Описание идеи:** %[2]s

**Тип приложения:** %[1]s
**Целевые платформы:** %[3]s

## Основные функции и возможности

### Ключевые функции
- Основная функциональность приложения согласно описанной идее
- Пользовательская регистрация и аутентификация
- Интуитивно понятный пользовательский интерфейс
- Адаптивный дизайн для различных размеров экранов

### Дополнительные возможности
- Система уведомлений
- Поиск и фильтрация контента
- Профиль пользователя с настройками
- Система обратной связи и поддержки

## Технологический стек

%[4]s

## Целевая аудитория

### Основные пользователи
- Возраст: 18-45 лет
- Технологическая грамотность: средняя и выше
- Устройства: современные смартфоны и компьютеры

### Потребности пользователей
- Простота использования
- Быстрая загрузка и отзывчивость
- Безопасность личных данных
- Стабильная работа приложения

## План разработки

### Этап 1: Планирование и дизайн (2-3 недели)
- Детальный анализ требований
- Создание wireframes и mockups
- UX/UI дизайн интерфейса
- Техническая архитектура

### Этап 2: MVP разработка (4-6 недель)
- Настройка проекта и среды разработки
- Реализация основных функций
- Базовый пользовательский интерфейс
- Интеграция с backend API

### Этап 3: Тестирование и запуск (2-3 недели)
- Функциональное тестирование
- Тестирование производительности
- Исправление багов
- Подготовка к релизу

### Этап 4: Развитие и масштабирование
- Сбор обратной связи от пользователей
- Добавление новых функций
- Оптимизация производительности
- Расширение пользовательской базы

## Требования к безопасности

- Шифрование пользовательских данных
- Безопасная аутентификация (JWT токены)
- Защита от основных веб-уязвимостей
- Регулярные обновления зависимостей

## Метрики успеха

- Количество активных пользователей
- Время удержания пользователей
- Скорость загрузки приложения
- Оценки в магазинах приложений (для мобильных)
- Конверсия целевых действий

---

*Этот документ создан автоматически с помощью Idea2Context*
`

// FallbackDocument assembles the offline document from idea and appType only.
// It makes no network calls and returns identical output for identical input.
func FallbackDocument(idea string, appType models.AppType) string {
	title, platforms, stack := "Мобильное приложение", "iOS и Android", mobileStack
	if appType == models.AppTypeWeb {
		title, platforms, stack = "Веб-приложение", "Веб-браузеры (Chrome, Firefox, Safari, Edge)", webStack
	}
	return fmt.Sprintf(fallbackTemplate, title, idea, platforms, stack)
}
