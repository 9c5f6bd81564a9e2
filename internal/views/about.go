package views

const aboutMarkdown = `# О проекте «Прокрастинатор Онлайн»

## Наша миссия

Помочь прокрастинаторам перестать откладывать дела на потом и начать жить
продуктивной жизнью. Каждому просто нужно правильное напоминание в правильное
время! 😉

- **Для тех, кто любит кофе** — AI подскажет, когда пора сделать перерыв.
- **Для чемпионов** — отслеживай прогресс и получай виртуальные трофеи.
- **Для энергичных** — следи за уровнем энергии и планируй задачи правильно.

## Команда

Небольшая, но гордая команда энтузиастов, которые тоже иногда прокрастинируют,
но всегда находят силы сделать всё вовремя.

*Начни сейчас — стань продуктивным завтра!* 🚀`

func RenderAboutPage() string {
	return RenderMarkdown(aboutMarkdown)
}
