package cli

import (
	"github.com/julianstephens/lifeadvance/internal/metrics"
	"github.com/julianstephens/lifeadvance/internal/models"
	"github.com/julianstephens/lifeadvance/internal/tracker"
)

type ArticleCmd struct {
	List   ArticleListCmd   `cmd:"" help:"List learning articles."`
	Show   ArticleShowCmd   `cmd:"" help:"Print an article."`
	Add    ArticleAddCmd    `cmd:"" help:"Add your own article."`
	Read   ArticleReadCmd   `cmd:"" help:"Toggle an article's read status."`
	Delete ArticleDeleteCmd `cmd:"" help:"Delete an article."`
}

func resolveArticle(t *tracker.Tracker, ref string) (models.LearningArticle, error) {
	articles := t.Articles.All()
	id, err := resolveID("article", idsOf(articles, func(a models.LearningArticle) string { return a.ID }), ref)
	if err != nil {
		return models.LearningArticle{}, err
	}
	article, _ := t.Articles.Get(id)
	return article, nil
}

type ArticleListCmd struct {
	Category string `short:"c" help:"Only show this category."`
	Unread   bool   `short:"u" help:"Only show unread articles."`
}

func (c *ArticleListCmd) Run(ctx *Context) error {
	var category *models.Category
	if c.Category != "" {
		parsed, err := models.ParseCategory(c.Category)
		if err != nil {
			return err
		}
		category = &parsed
	}
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	articles := t.Articles.Filter(category)
	if len(articles) == 0 {
		ctx.println("No articles found.")
		return nil
	}

	ctx.println(headerStyle.Render("Learning Hub"))
	for _, a := range articles {
		if c.Unread && a.IsRead {
			continue
		}
		ctx.printf("  %s %s  %s  %s\n",
			checkbox(a.IsRead),
			mutedStyle.Render(shortID(a.ID)),
			a.Title,
			mutedStyle.Render(string(a.Category)+", "+formatMinutes(a.ReadingTime)))
	}

	stats := metrics.ArticleReadStats(articles)
	ctx.printf("\n%d read, %d unread (%s left)\n", stats.Read, stats.Unread, formatMinutes(metrics.TotalReadingTime(articles, true)))
	return nil
}

type ArticleShowCmd struct {
	ID string `arg:"" help:"Article ID or unique prefix."`
}

func (c *ArticleShowCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}
	a, err := resolveArticle(t, c.ID)
	if err != nil {
		return err
	}

	ctx.println(headerStyle.Render(a.Title))
	ctx.println(mutedStyle.Render(string(a.Category) + " · " + formatMinutes(a.ReadingTime) + " read"))
	ctx.println()
	ctx.println(a.Content)
	return nil
}

type ArticleAddCmd struct {
	Title       string `arg:"" help:"Article title."`
	Category    string `short:"c" help:"Category (productivity|mindfulness|creativity|leadership|communication|wellness)." required:""`
	Content     string `help:"Article body."`
	ReadingTime int    `short:"r" help:"Estimated reading time in minutes." default:"5"`
}

func (c *ArticleAddCmd) Run(ctx *Context) error {
	category, err := models.ParseCategory(c.Category)
	if err != nil {
		return err
	}
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	article, err := t.Articles.Add(c.Title, category, c.Content, c.ReadingTime)
	if err != nil {
		return err
	}
	ctx.printf("Added article: %s (%s)\n", article.Title, shortID(article.ID))
	return nil
}

type ArticleReadCmd struct {
	ID string `arg:"" help:"Article ID or unique prefix."`
}

func (c *ArticleReadCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}
	a, err := resolveArticle(t, c.ID)
	if err != nil {
		return err
	}
	if err := t.Articles.ToggleRead(a.ID); err != nil {
		return err
	}

	if !a.IsRead {
		ctx.printf("%s Marked as read: %s\n", doneStyle.Render("✓"), a.Title)
	} else {
		ctx.printf("Marked as unread: %s\n", a.Title)
	}
	return nil
}

type ArticleDeleteCmd struct {
	ID string `arg:"" help:"Article ID or unique prefix."`
}

func (c *ArticleDeleteCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}
	a, err := resolveArticle(t, c.ID)
	if err != nil {
		return err
	}
	if err := t.Articles.Delete(a.ID); err != nil {
		return err
	}
	ctx.printf("Deleted article: %s\n", a.Title)
	return nil
}
