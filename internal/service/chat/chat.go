package chat

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"govdocgo/internal/models"
)

// ApologyMessage is returned whenever the backend fails during a chat
// call. Chat is best-effort: failures degrade to this fixed sentence
// instead of an HTTP error.
const ApologyMessage = "죄송합니다. 서버 연결에 실패하여 답변을 드릴 수 없습니다."

// EmptyResponseMessage is returned when the backend answers with no
// text at all.
const EmptyResponseMessage = "죄송합니다. 응답을 생성할 수 없습니다."

// groundingTemplate embeds the serialized analysis result as ground
// truth and the three-tier answer priority policy.
const groundingTemplate = `당신은 대한민국 공공기관 행정 문서 전문가입니다.
아래 제공된 [문서 분석 데이터]를 기반으로 답변하되, 문서에 없는 내용은 **Google Search**를 통해 보완하여 답변해야 합니다.

[문서 분석 데이터]:
%s

[답변 원칙 (Priority)]:
1. **제 1원칙: 문서 우선 (Ground Truth)**
   - 사용자의 질문에 대한 답이 [문서 분석 데이터]에 있다면, 무조건 그 내용을 최우선으로 답변하세요.

2. **제 2원칙: 관련성 높은 검색 (Strictly Relevant Search)**
   - 문서에 없는 내용(예: 구체적인 납부 기한, 담당 부서 연락처)을 물어볼 때만 검색하세요.
   - **검색 키워드**: 문서에 명시된 **'정확한 사업명', '공고 번호', '기관명'** 등을 포함하여 구체적으로 검색해야 합니다. (예: "2025년 청년도약계좌 신청기간" O, "청년 적금 기간" X)
   - **일반론 금지**: 질문과 직접적으로 관련 없는 일반적인 법령(예: "국가연구개발혁신법에 따르면...")이나 다른 유사 사업의 사례를 나열하지 마세요. 사용자는 **이 문서**에 대한 답을 원합니다.

3. **제 3원칙: 모르면 모른다고 하기 (Compact Failure)**
   - 문서에도 없고, **이 문서와 직접 관련된** 검색 결과도 없다면, 억지로 정보를 끼워 맞추지 마세요.
   - **답변 양식**: "죄송하지만 문서 내용에 없으며, 관련 검색 결과(공고문 등)에서도 정확한 정보를 찾을 수 없습니다."라고 **한 문장으로 간결하게** 답변하세요.
   - 불필요한 배경 지식이나 TMI(Too Much Information)를 덧붙이지 마세요.

4. **답변 스타일**:
   - **친절하고 명확하게**: 전문 용어는 쉽게 풀어서 설명하고, 중요한 정보(날짜, 금액, 기관명)는 **굵게(Bold)** 표시하세요.
   - **출처 명시**: 문서에 있는 내용은 "문서에 따르면...", 검색한 내용은 "검색 결과(출처)에 따르면..."이라고 명확히 구분해서 말해주세요.`

// Chatter is the slice of the generative backend the grounding engine
// needs: one search-capable conversational exchange.
type Chatter interface {
	ChatWithSearch(ctx context.Context, system string, history []models.ChatTurn, message string) (string, error)
}

// Service answers follow-up questions grounded in a prior analysis
// result. It is stateless between calls: the caller round-trips the
// full history and document context every time.
type Service struct {
	backend Chatter
	logger  *zap.Logger
}

// NewService constructs the grounding engine.
func NewService(backend Chatter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{backend: backend, logger: logger}
}

// Respond produces the answer to one follow-up question. It never
// returns an error: backend failures degrade to the fixed apology.
func (s *Service) Respond(ctx context.Context, history []models.ChatTurn, message, documentContext string) string {
	system := fmt.Sprintf(groundingTemplate, documentContext)
	text, err := s.backend.ChatWithSearch(ctx, system, history, message)
	if err != nil {
		s.logger.Error("chat backend failed", zap.Error(err))
		return ApologyMessage
	}
	if text == "" {
		return EmptyResponseMessage
	}
	return text
}
