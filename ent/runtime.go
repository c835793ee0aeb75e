// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ewei/lexikid/ent/achievement"
	"github.com/ewei/lexikid/ent/item"
	"github.com/ewei/lexikid/ent/progressrecord"
	"github.com/ewei/lexikid/ent/schema"
	"github.com/ewei/lexikid/ent/sessionrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementFields := schema.Achievement{}.Fields()
	_ = achievementFields
	// achievementDescName is the schema descriptor for name field.
	achievementDescName := achievementFields[1].Descriptor()
	// achievement.NameValidator is a validator for the "name" field. It is called by the builders before save.
	achievement.NameValidator = achievementDescName.Validators[0].(func(string) error)
	// achievementDescDescription is the schema descriptor for description field.
	achievementDescDescription := achievementFields[2].Descriptor()
	// achievement.DefaultDescription holds the default value on creation for the description field.
	achievement.DefaultDescription = achievementDescDescription.Default.(string)
	// achievementDescIcon is the schema descriptor for icon field.
	achievementDescIcon := achievementFields[3].Descriptor()
	// achievement.DefaultIcon holds the default value on creation for the icon field.
	achievement.DefaultIcon = achievementDescIcon.Default.(string)
	// achievementDescCategory is the schema descriptor for category field.
	achievementDescCategory := achievementFields[4].Descriptor()
	// achievement.DefaultCategory holds the default value on creation for the category field.
	achievement.DefaultCategory = achievementDescCategory.Default.(string)
	// achievementDescReward is the schema descriptor for reward field.
	achievementDescReward := achievementFields[6].Descriptor()
	// achievement.DefaultReward holds the default value on creation for the reward field.
	achievement.DefaultReward = achievementDescReward.Default.(int)
	// achievement.RewardValidator is a validator for the "reward" field. It is called by the builders before save.
	achievement.RewardValidator = achievementDescReward.Validators[0].(func(int) error)
	// achievementDescUnlocked is the schema descriptor for unlocked field.
	achievementDescUnlocked := achievementFields[7].Descriptor()
	// achievement.DefaultUnlocked holds the default value on creation for the unlocked field.
	achievement.DefaultUnlocked = achievementDescUnlocked.Default.(bool)
	// achievementDescID is the schema descriptor for id field.
	achievementDescID := achievementFields[0].Descriptor()
	// achievement.IDValidator is a validator for the "id" field. It is called by the builders before save.
	achievement.IDValidator = achievementDescID.Validators[0].(func(string) error)
	itemFields := schema.Item{}.Fields()
	_ = itemFields
	// itemDescNameCn is the schema descriptor for name_cn field.
	itemDescNameCn := itemFields[1].Descriptor()
	// item.NameCnValidator is a validator for the "name_cn" field. It is called by the builders before save.
	item.NameCnValidator = itemDescNameCn.Validators[0].(func(string) error)
	// itemDescNameEn is the schema descriptor for name_en field.
	itemDescNameEn := itemFields[2].Descriptor()
	// item.NameEnValidator is a validator for the "name_en" field. It is called by the builders before save.
	item.NameEnValidator = itemDescNameEn.Validators[0].(func(string) error)
	// itemDescCategory is the schema descriptor for category field.
	itemDescCategory := itemFields[3].Descriptor()
	// item.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	item.CategoryValidator = itemDescCategory.Validators[0].(func(string) error)
	// itemDescDifficulty is the schema descriptor for difficulty field.
	itemDescDifficulty := itemFields[4].Descriptor()
	// item.DefaultDifficulty holds the default value on creation for the difficulty field.
	item.DefaultDifficulty = itemDescDifficulty.Default.(int)
	// item.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	item.DifficultyValidator = itemDescDifficulty.Validators[0].(func(int) error)
	// itemDescDescriptionCn is the schema descriptor for description_cn field.
	itemDescDescriptionCn := itemFields[5].Descriptor()
	// item.DefaultDescriptionCn holds the default value on creation for the description_cn field.
	item.DefaultDescriptionCn = itemDescDescriptionCn.Default.(string)
	// itemDescDescriptionEn is the schema descriptor for description_en field.
	itemDescDescriptionEn := itemFields[6].Descriptor()
	// item.DefaultDescriptionEn holds the default value on creation for the description_en field.
	item.DefaultDescriptionEn = itemDescDescriptionEn.Default.(string)
	// itemDescImageRes is the schema descriptor for image_res field.
	itemDescImageRes := itemFields[7].Descriptor()
	// item.DefaultImageRes holds the default value on creation for the image_res field.
	item.DefaultImageRes = itemDescImageRes.Default.(string)
	// itemDescAudioCn is the schema descriptor for audio_cn field.
	itemDescAudioCn := itemFields[8].Descriptor()
	// item.DefaultAudioCn holds the default value on creation for the audio_cn field.
	item.DefaultAudioCn = itemDescAudioCn.Default.(string)
	// itemDescAudioEn is the schema descriptor for audio_en field.
	itemDescAudioEn := itemFields[9].Descriptor()
	// item.DefaultAudioEn holds the default value on creation for the audio_en field.
	item.DefaultAudioEn = itemDescAudioEn.Default.(string)
	// itemDescAudioDescCn is the schema descriptor for audio_desc_cn field.
	itemDescAudioDescCn := itemFields[10].Descriptor()
	// item.DefaultAudioDescCn holds the default value on creation for the audio_desc_cn field.
	item.DefaultAudioDescCn = itemDescAudioDescCn.Default.(string)
	// itemDescCustomImage is the schema descriptor for custom_image field.
	itemDescCustomImage := itemFields[13].Descriptor()
	// item.DefaultCustomImage holds the default value on creation for the custom_image field.
	item.DefaultCustomImage = itemDescCustomImage.Default.(string)
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescViewed is the schema descriptor for viewed field.
	progressrecordDescViewed := progressrecordFields[1].Descriptor()
	// progressrecord.DefaultViewed holds the default value on creation for the viewed field.
	progressrecord.DefaultViewed = progressrecordDescViewed.Default.(bool)
	// progressrecordDescReviewCount is the schema descriptor for review_count field.
	progressrecordDescReviewCount := progressrecordFields[2].Descriptor()
	// progressrecord.DefaultReviewCount holds the default value on creation for the review_count field.
	progressrecord.DefaultReviewCount = progressrecordDescReviewCount.Default.(int)
	// progressrecord.ReviewCountValidator is a validator for the "review_count" field. It is called by the builders before save.
	progressrecord.ReviewCountValidator = progressrecordDescReviewCount.Validators[0].(func(int) error)
	// progressrecordDescMasteryLevel is the schema descriptor for mastery_level field.
	progressrecordDescMasteryLevel := progressrecordFields[3].Descriptor()
	// progressrecord.DefaultMasteryLevel holds the default value on creation for the mastery_level field.
	progressrecord.DefaultMasteryLevel = progressrecordDescMasteryLevel.Default.(int)
	// progressrecord.MasteryLevelValidator is a validator for the "mastery_level" field. It is called by the builders before save.
	progressrecord.MasteryLevelValidator = func() func(int) error {
		validators := progressrecordDescMasteryLevel.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(mastery_level int) error {
			for _, fn := range fns {
				if err := fn(mastery_level); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// progressrecordDescFavorite is the schema descriptor for favorite field.
	progressrecordDescFavorite := progressrecordFields[5].Descriptor()
	// progressrecord.DefaultFavorite holds the default value on creation for the favorite field.
	progressrecord.DefaultFavorite = progressrecordDescFavorite.Default.(bool)
	sessionrecordFields := schema.SessionRecord{}.Fields()
	_ = sessionrecordFields
	// sessionrecordDescRunID is the schema descriptor for run_id field.
	sessionrecordDescRunID := sessionrecordFields[0].Descriptor()
	// sessionrecord.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	sessionrecord.RunIDValidator = sessionrecordDescRunID.Validators[0].(func(string) error)
	// sessionrecordDescMode is the schema descriptor for mode field.
	sessionrecordDescMode := sessionrecordFields[1].Descriptor()
	// sessionrecord.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionrecord.ModeValidator = sessionrecordDescMode.Validators[0].(func(string) error)
	// sessionrecordDescScore is the schema descriptor for score field.
	sessionrecordDescScore := sessionrecordFields[2].Descriptor()
	// sessionrecord.DefaultScore holds the default value on creation for the score field.
	sessionrecord.DefaultScore = sessionrecordDescScore.Default.(int)
	// sessionrecord.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	sessionrecord.ScoreValidator = sessionrecordDescScore.Validators[0].(func(int) error)
	// sessionrecordDescCorrectCount is the schema descriptor for correct_count field.
	sessionrecordDescCorrectCount := sessionrecordFields[3].Descriptor()
	// sessionrecord.DefaultCorrectCount holds the default value on creation for the correct_count field.
	sessionrecord.DefaultCorrectCount = sessionrecordDescCorrectCount.Default.(int)
	// sessionrecord.CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	sessionrecord.CorrectCountValidator = sessionrecordDescCorrectCount.Validators[0].(func(int) error)
	// sessionrecordDescTotalCount is the schema descriptor for total_count field.
	sessionrecordDescTotalCount := sessionrecordFields[4].Descriptor()
	// sessionrecord.DefaultTotalCount holds the default value on creation for the total_count field.
	sessionrecord.DefaultTotalCount = sessionrecordDescTotalCount.Default.(int)
	// sessionrecord.TotalCountValidator is a validator for the "total_count" field. It is called by the builders before save.
	sessionrecord.TotalCountValidator = sessionrecordDescTotalCount.Validators[0].(func(int) error)
	// sessionrecordDescDurationSecs is the schema descriptor for duration_secs field.
	sessionrecordDescDurationSecs := sessionrecordFields[5].Descriptor()
	// sessionrecord.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionrecord.DefaultDurationSecs = sessionrecordDescDurationSecs.Default.(int)
	// sessionrecord.DurationSecsValidator is a validator for the "duration_secs" field. It is called by the builders before save.
	sessionrecord.DurationSecsValidator = sessionrecordDescDurationSecs.Validators[0].(func(int) error)
	// sessionrecordDescTimestamp is the schema descriptor for timestamp field.
	sessionrecordDescTimestamp := sessionrecordFields[6].Descriptor()
	// sessionrecord.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionrecord.DefaultTimestamp = sessionrecordDescTimestamp.Default.(func() time.Time)
}
