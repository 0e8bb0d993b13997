package database

import (
	"github.com/lshigami/trivia/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var seedCategories = []model.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

var seedQuestions = []model.Question{
	{Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: "4", Difficulty: 2},
	{Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: "4", Difficulty: 1},
	{Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Category: "5", Difficulty: 4},
	{Question: "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", Answer: "Tom Cruise", Category: "5", Difficulty: 4},
	{Question: "What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", Answer: "Edward Scissorhands", Category: "5", Difficulty: 3},
	{Question: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", Category: "6", Difficulty: 3},
	{Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Category: "6", Difficulty: 4},
	{Question: "Who invented Peanut Butter?", Answer: "George Washington Carver", Category: "4", Difficulty: 2},
	{Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: "3", Difficulty: 2},
	{Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", Category: "3", Difficulty: 3},
	{Question: "The Taj Mahal is located in which Indian city?", Answer: "Agra", Category: "3", Difficulty: 2},
	{Question: "Which Dutch graphic artist-initials M C was a creator of optical illusions?", Answer: "Escher", Category: "2", Difficulty: 1},
	{Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: "2", Difficulty: 3},
	{Question: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", Category: "2", Difficulty: 4},
	{Question: "Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", Answer: "Jackson Pollock", Category: "2", Difficulty: 2},
	{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: "1", Difficulty: 4},
	{Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: "1", Difficulty: 3},
	{Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Category: "1", Difficulty: 4},
	{Question: "Which dung beetle was worshipped by the ancient Egyptians?", Answer: "Scarab", Category: "4", Difficulty: 4},
}

// Seed loads the trivia fixture into empty tables. Tables that already hold rows are left alone.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Category{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			categories := append([]model.Category(nil), seedCategories...)
			if err := tx.Create(&categories).Error; err != nil {
				return err
			}
			log.Info().Int("count", len(categories)).Msg("Seeded categories")
		}

		if err := tx.Model(&model.Question{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			questions := append([]model.Question(nil), seedQuestions...)
			if err := tx.Create(&questions).Error; err != nil {
				return err
			}
			log.Info().Int("count", len(questions)).Msg("Seeded questions")
		}
		return nil
	})
}
