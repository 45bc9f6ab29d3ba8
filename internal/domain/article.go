package domain

import "fmt"

// Article описывает синтетическую запись статьи.
type Article struct {
	ID     int64
	Title  string
	Author string
	Tags   []string
}

var articleAuthors = []string{"alice", "bob", "carol"}

var articleTags = []string{"go", "api", "tutorial", "backend"}

func NewArticle(id int64) *Article {
	return &Article{
		ID:     id,
		Title:  fmt.Sprintf("Article %d", id),
		Author: articleAuthors[id%int64(len(articleAuthors))],
		Tags:   []string{articleTags[id%int64(len(articleTags))]},
	}
}
