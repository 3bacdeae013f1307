package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/clowiiza1/pukkeconnect-backend/internal/models"
	"github.com/clowiiza1/pukkeconnect-backend/internal/services"
)

// ID is how numeric identifiers cross the API: always written as a JSON
// string, accepted as either a string or a number.
type ID uint

func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatUint(uint64(id), 10))), nil
}

func (id *ID) UnmarshalJSON(b []byte) error {
	raw := string(bytes.Trim(b, `"`))
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s", b)
	}
	*id = ID(n)
	return nil
}

// Ref is a free-form entity reference that clients may send as a number or a
// string. It is stored as text.
type Ref string

func (r *Ref) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = Ref(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid reference %s", b)
	}
	*r = Ref(n.String())
	return nil
}

func idPtr(v *uint) *ID {
	if v == nil {
		return nil
	}
	id := ID(*v)
	return &id
}

func uintPtr(v *ID) *uint {
	if v == nil {
		return nil
	}
	u := uint(*v)
	return &u
}

func toUints(ids []ID) []uint {
	out := make([]uint, len(ids))
	for i, id := range ids {
		out[i] = uint(id)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Interests

type InterestDTO struct {
	ID       ID     `json:"id" swaggertype:"string" example:"7"`
	Name     string `json:"name" example:"Robotics"`
	ParentID *ID    `json:"parentId,omitempty" swaggertype:"string"`
}

func toInterestDTO(i models.Interest) InterestDTO {
	return InterestDTO{ID: ID(i.ID), Name: i.Name, ParentID: idPtr(i.ParentID)}
}

type StudentInterestDTO struct {
	ID     ID      `json:"id" swaggertype:"string" example:"7"`
	Name   string  `json:"name" example:"Robotics"`
	Weight float64 `json:"weight" example:"15"`
}

type StudentInterestsResponse struct {
	StudentID string               `json:"studentId"`
	Interests []StudentInterestDTO `json:"interests"`
}

func toStudentInterests(studentID string, edges []models.StudentInterest) StudentInterestsResponse {
	out := StudentInterestsResponse{StudentID: studentID, Interests: make([]StudentInterestDTO, len(edges))}
	for i, e := range edges {
		out.Interests[i] = StudentInterestDTO{ID: ID(e.InterestID), Name: e.Interest.Name, Weight: e.Weight}
	}
	return out
}

// Matchmaker

type SubmissionResponse struct {
	ResponseID         ID            `json:"responseId" swaggertype:"string"`
	QuizID             ID            `json:"quizId" swaggertype:"string"`
	StudentID          string        `json:"studentId"`
	SubmittedAt        time.Time     `json:"submittedAt"`
	DerivedInterestIDs []ID          `json:"derivedInterestIds" swaggertype:"array,string"`
	InterestsAdded     []InterestDTO `json:"interestsAdded"`
	TotalInterests     int           `json:"totalInterests"`
}

func toSubmissionResponse(r *services.SubmissionResult) SubmissionResponse {
	out := SubmissionResponse{
		ResponseID:         ID(r.ResponseID),
		QuizID:             ID(r.QuizID),
		StudentID:          r.StudentID,
		SubmittedAt:        r.SubmittedAt,
		DerivedInterestIDs: make([]ID, len(r.DerivedInterestIDs)),
		InterestsAdded:     make([]InterestDTO, len(r.InterestsAdded)),
		TotalInterests:     r.TotalInterests,
	}
	for i, id := range r.DerivedInterestIDs {
		out.DerivedInterestIDs[i] = ID(id)
	}
	for i, ref := range r.InterestsAdded {
		out.InterestsAdded[i] = InterestDTO{ID: ID(ref.ID), Name: ref.Name}
	}
	return out
}

type ResponseAnswerDTO struct {
	QuestionID ID      `json:"questionId" swaggertype:"string"`
	OptionID   *ID     `json:"optionId,omitempty" swaggertype:"string"`
	FreeText   *string `json:"freeText,omitempty"`
}

type QuizResponseDTO struct {
	ID          ID                  `json:"id" swaggertype:"string"`
	QuizID      ID                  `json:"quizId" swaggertype:"string"`
	StudentID   string              `json:"studentId"`
	SubmittedAt time.Time           `json:"submittedAt"`
	Answers     []ResponseAnswerDTO `json:"answers"`
}

func toQuizResponseDTO(r *models.QuizResponse) QuizResponseDTO {
	out := QuizResponseDTO{
		ID:          ID(r.ID),
		QuizID:      ID(r.QuizID),
		StudentID:   r.StudentID,
		SubmittedAt: r.SubmittedAt,
		Answers:     make([]ResponseAnswerDTO, len(r.Answers)),
	}
	for i, a := range r.Answers {
		out.Answers[i] = ResponseAnswerDTO{QuestionID: ID(a.QuestionID), OptionID: idPtr(a.OptionID), FreeText: a.FreeText}
	}
	return out
}

// Quizzes

type OptionInterestDTO struct {
	InterestID ID       `json:"interestId" swaggertype:"string"`
	Weight     *float64 `json:"weight,omitempty"`
}

type OptionDTO struct {
	ID        ID                  `json:"id" swaggertype:"string"`
	Label     string              `json:"label"`
	Value     string              `json:"value"`
	Interests []OptionInterestDTO `json:"interests,omitempty"`
}

type QuestionDTO struct {
	ID      ID          `json:"id" swaggertype:"string"`
	Prompt  string      `json:"prompt"`
	Kind    string      `json:"kind" enums:"single,multi,text"`
	Options []OptionDTO `json:"options"`
}

type QuizDTO struct {
	ID          ID            `json:"id" swaggertype:"string"`
	SocietyID   *ID           `json:"societyId" swaggertype:"string"`
	Title       string        `json:"title"`
	Description *string       `json:"description,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	Questions   []QuestionDTO `json:"questions"`
}

// toQuizDTO hides option interest links unless withLinks is set; students
// answering the matchmaker quiz should not see how options are scored.
func toQuizDTO(q *models.Quiz, withLinks bool) QuizDTO {
	out := QuizDTO{
		ID:          ID(q.ID),
		SocietyID:   idPtr(q.SocietyID),
		Title:       q.Title,
		Description: q.Description,
		CreatedAt:   q.CreatedAt,
		Questions:   make([]QuestionDTO, len(q.Questions)),
	}
	for i, question := range q.Questions {
		qd := QuestionDTO{
			ID:      ID(question.ID),
			Prompt:  question.Prompt,
			Kind:    question.Kind,
			Options: make([]OptionDTO, len(question.Options)),
		}
		for j, o := range question.Options {
			od := OptionDTO{ID: ID(o.ID), Label: o.Label, Value: o.Value}
			if withLinks {
				for _, link := range o.Interests {
					od.Interests = append(od.Interests, OptionInterestDTO{InterestID: ID(link.InterestID), Weight: link.Weight})
				}
			}
			qd.Options[j] = od
		}
		out.Questions[i] = qd
	}
	return out
}

// Recommendations

type RecommendationItem struct {
	SocietyID    ID       `json:"societyId" swaggertype:"string"`
	Name         string   `json:"name"`
	Category     *string  `json:"category"`
	Campus       *string  `json:"campus"`
	Description  *string  `json:"description"`
	MatchScore   float64  `json:"matchScore" example:"0.88"`
	ReasonPills  []string `json:"reasonPills"`
	InterestTags []string `json:"interestTags"`
	CampusMatch  bool     `json:"campusMatch"`
}

type RailDTO struct {
	Title     string               `json:"title" example:"Top Picks for You"`
	Items     []RecommendationItem `json:"items"`
	Reasons   []string             `json:"reasons,omitempty"`
	ReasonTag string               `json:"reasonTag,omitempty"`
}

type RecommendationsResponse struct {
	Rails []RailDTO `json:"rails"`
}

func toRecommendationsResponse(rails []services.Rail) RecommendationsResponse {
	out := RecommendationsResponse{Rails: make([]RailDTO, len(rails))}
	for i, r := range rails {
		rd := RailDTO{Title: r.Title, Reasons: r.Reasons, ReasonTag: r.ReasonTag, Items: make([]RecommendationItem, len(r.Items))}
		for j, c := range r.Items {
			rd.Items[j] = RecommendationItem{
				SocietyID:    ID(c.SocietyID),
				Name:         c.Name,
				Category:     c.Category,
				Campus:       c.Campus,
				Description:  c.Description,
				MatchScore:   c.MatchScore,
				ReasonPills:  nonNil(c.ReasonPills),
				InterestTags: nonNil(c.InterestTags),
				CampusMatch:  c.CampusMatch,
			}
		}
		out.Rails[i] = rd
	}
	return out
}
