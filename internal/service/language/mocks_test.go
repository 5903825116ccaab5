package language

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-langs/internal/domain"
	"github.com/heartmarshall/myenglish-langs/internal/parser"
)

var _ languageRepo = &languageRepoMock{}

type languageRepoMock struct {
	CreateFunc     func(ctx context.Context, lang *domain.Language) (*domain.Language, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	FindByNameFunc func(ctx context.Context, name string) (*domain.Language, error)
	ListFunc       func(ctx context.Context) ([]*domain.Language, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx  context.Context
			Lang *domain.Language
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		FindByName []struct {
			Ctx  context.Context
			Name string
		}
		List []struct {
			Ctx context.Context
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockFindByName sync.RWMutex
	lockList       sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *languageRepoMock) Create(ctx context.Context, lang *domain.Language) (*domain.Language, error) {
	if mock.CreateFunc == nil {
		panic("languageRepoMock.CreateFunc: method is nil but languageRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Lang *domain.Language
	}{Ctx: ctx, Lang: lang}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, lang)
}

func (mock *languageRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Lang *domain.Language
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *languageRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	if mock.GetByIDFunc == nil {
		panic("languageRepoMock.GetByIDFunc: method is nil but languageRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *languageRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *languageRepoMock) FindByName(ctx context.Context, name string) (*domain.Language, error) {
	if mock.FindByNameFunc == nil {
		panic("languageRepoMock.FindByNameFunc: method is nil but languageRepo.FindByName was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockFindByName.Lock()
	mock.calls.FindByName = append(mock.calls.FindByName, callInfo)
	mock.lockFindByName.Unlock()
	return mock.FindByNameFunc(ctx, name)
}

func (mock *languageRepoMock) FindByNameCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockFindByName.RLock()
	calls := mock.calls.FindByName
	mock.lockFindByName.RUnlock()
	return calls
}

func (mock *languageRepoMock) List(ctx context.Context) ([]*domain.Language, error) {
	if mock.ListFunc == nil {
		panic("languageRepoMock.ListFunc: method is nil but languageRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *languageRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *languageRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("languageRepoMock.DeleteFunc: method is nil but languageRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *languageRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ predefinedCatalog = &predefinedCatalogMock{}

type predefinedCatalogMock struct {
	ListFunc func(ctx context.Context) ([]*domain.Language, error)
	FindFunc func(ctx context.Context, name string) (*domain.Language, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Find []struct {
			Ctx  context.Context
			Name string
		}
	}
	lockList sync.RWMutex
	lockFind sync.RWMutex
}

func (mock *predefinedCatalogMock) List(ctx context.Context) ([]*domain.Language, error) {
	if mock.ListFunc == nil {
		panic("predefinedCatalogMock.ListFunc: method is nil but predefinedCatalog.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *predefinedCatalogMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *predefinedCatalogMock) Find(ctx context.Context, name string) (*domain.Language, error) {
	if mock.FindFunc == nil {
		panic("predefinedCatalogMock.FindFunc: method is nil but predefinedCatalog.Find was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, name)
}

func (mock *predefinedCatalogMock) FindCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

var _ tokenizer = &tokenizerMock{}

type tokenizerMock struct {
	ResolveFunc   func(tag domain.ParserType) (parser.Parser, error)
	TokenizeFunc  func(lang *domain.Language, text string) ([]parser.Token, error)
	LowercaseFunc func(lang *domain.Language, text string) (string, error)

	calls struct {
		Resolve []struct {
			Tag domain.ParserType
		}
		Tokenize []struct {
			Lang *domain.Language
			Text string
		}
		Lowercase []struct {
			Lang *domain.Language
			Text string
		}
	}
	lockResolve   sync.RWMutex
	lockTokenize  sync.RWMutex
	lockLowercase sync.RWMutex
}

func (mock *tokenizerMock) Resolve(tag domain.ParserType) (parser.Parser, error) {
	if mock.ResolveFunc == nil {
		panic("tokenizerMock.ResolveFunc: method is nil but tokenizer.Resolve was just called")
	}
	callInfo := struct {
		Tag domain.ParserType
	}{Tag: tag}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(tag)
}

func (mock *tokenizerMock) ResolveCalls() []struct {
	Tag domain.ParserType
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}

func (mock *tokenizerMock) Tokenize(lang *domain.Language, text string) ([]parser.Token, error) {
	if mock.TokenizeFunc == nil {
		panic("tokenizerMock.TokenizeFunc: method is nil but tokenizer.Tokenize was just called")
	}
	callInfo := struct {
		Lang *domain.Language
		Text string
	}{Lang: lang, Text: text}
	mock.lockTokenize.Lock()
	mock.calls.Tokenize = append(mock.calls.Tokenize, callInfo)
	mock.lockTokenize.Unlock()
	return mock.TokenizeFunc(lang, text)
}

func (mock *tokenizerMock) TokenizeCalls() []struct {
	Lang *domain.Language
	Text string
} {
	mock.lockTokenize.RLock()
	calls := mock.calls.Tokenize
	mock.lockTokenize.RUnlock()
	return calls
}

func (mock *tokenizerMock) Lowercase(lang *domain.Language, text string) (string, error) {
	if mock.LowercaseFunc == nil {
		panic("tokenizerMock.LowercaseFunc: method is nil but tokenizer.Lowercase was just called")
	}
	callInfo := struct {
		Lang *domain.Language
		Text string
	}{Lang: lang, Text: text}
	mock.lockLowercase.Lock()
	mock.calls.Lowercase = append(mock.calls.Lowercase, callInfo)
	mock.lockLowercase.Unlock()
	return mock.LowercaseFunc(lang, text)
}

func (mock *tokenizerMock) LowercaseCalls() []struct {
	Lang *domain.Language
	Text string
} {
	mock.lockLowercase.RLock()
	calls := mock.calls.Lowercase
	mock.lockLowercase.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
