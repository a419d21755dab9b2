package converter_test

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v2"

	"github.com/Jklawreszuk/gettext-net/catalog"
	"github.com/Jklawreszuk/gettext-net/converter"
	"github.com/Jklawreszuk/gettext-net/resource"
	"github.com/Jklawreszuk/gettext-net/test"
	mock_resource "github.com/Jklawreszuk/gettext-net/test/mock/resource"
)

var _ = Describe("Catalog Converter", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "gettext-net-converter-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	writePO := func(name string, lang string, entries ...test.POEntry) string {
		path, err := test.WritePO(dir, name, lang, entries...)
		Expect(err).NotTo(HaveOccurred())
		return path
	}

	get := func(sink *resource.Memory, key string) string {
		value, _ := sink.Get(key)
		return value
	}

	readBundle := func(path string) map[string]string {
		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		out := map[string]string{}
		Expect(yaml.Unmarshal(data, &out)).To(Succeed())
		return out
	}

	It("should write an empty bundle for zero input files", func() {
		sink := resource.NewMemory()
		Expect(converter.New().Run(nil, sink)).To(Succeed())
		Expect(sink.Len()).To(Equal(0))
		Expect(sink.Generated).To(BeTrue())
	})

	It("should emit the translation of a translated entry", func() {
		fr := writePO("fr.po", "fr", test.POEntry{ID: "hello", Str: "bonjour"})
		out := filepath.Join(dir, "fr.yaml")
		sink, err := resource.CreateYAMLFile(out)
		Expect(err).NotTo(HaveOccurred())

		Expect(converter.New().Run([]string{fr}, sink)).To(Succeed())
		Expect(readBundle(out)).To(Equal(map[string]string{"hello": "bonjour"}))
	})

	It("should emit the source string of an untranslated entry", func() {
		fr := writePO("fr.po", "fr", test.POEntry{ID: "cancel"})
		sink := resource.NewMemory()
		Expect(converter.New().Run([]string{fr}, sink)).To(Succeed())
		Expect(get(sink, "cancel")).To(Equal("cancel"))
	})

	It("should let the last file win on duplicate keys", func() {
		a := writePO("a.po", "fr", test.POEntry{ID: "hello", Str: "bonjour"}, test.POEntry{ID: "yes", Str: "oui"})
		b := writePO("b.po", "fr", test.POEntry{ID: "hello", Str: "salut"})

		for i := 0; i < 3; i++ {
			sink := resource.NewMemory()
			Expect(converter.New().Run([]string{a, b}, sink)).To(Succeed())
			Expect(sink.Map()).To(Equal(map[string]string{"hello": "salut", "yes": "oui"}))
			Expect(sink.Keys()).To(Equal([]string{"hello", "yes"}))
		}
	})

	It("should key context entries with the context separator", func() {
		fr := writePO("fr.po", "fr",
			test.POEntry{Context: "menu", ID: "open", Str: "ouvrir"},
			test.POEntry{ID: "open", Str: "ouvert"},
		)
		sink := resource.NewMemory()
		Expect(converter.New().Run([]string{fr}, sink)).To(Succeed())
		Expect(get(sink, "menu"+catalog.ContextSeparator+"open")).To(Equal("ouvrir"))
		Expect(get(sink, "open")).To(Equal("ouvert"))
	})

	It("should emit the first plural form", func() {
		fr := writePO("fr.po", "fr", test.POEntry{ID: "file", IDPlural: "files", StrPlural: []string{"fichier", "fichiers"}})
		sink := resource.NewMemory()
		Expect(converter.New().Run([]string{fr}, sink)).To(Succeed())
		Expect(get(sink, "file")).To(Equal("fichier"))
	})

	It("should skip fuzzy translations unless asked", func() {
		fr := writePO("fr.po", "fr", test.POEntry{ID: "save", Str: "enregistrer", Fuzzy: true})

		sink := resource.NewMemory()
		Expect(converter.New().Run([]string{fr}, sink)).To(Succeed())
		Expect(get(sink, "save")).To(Equal("save"))

		sink = resource.NewMemory()
		Expect(converter.New(converter.WithUseFuzzy(true)).Run([]string{fr}, sink)).To(Succeed())
		Expect(get(sink, "save")).To(Equal("enregistrer"))
	})

	It("should abort when an input file is missing", func() {
		fr := writePO("fr.po", "fr", test.POEntry{ID: "hello", Str: "bonjour"})
		sink := resource.NewMemory()
		err := converter.New().Run([]string{fr, filepath.Join(dir, "missing.po")}, sink)
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
		Expect(sink.Len()).To(Equal(0))
		Expect(sink.Closed).To(BeTrue())
	})

	Context("when the sink rejects a resource", func() {
		var ctrl *gomock.Controller

		BeforeEach(func() {
			ctrl = gomock.NewController(GinkgoT())
		})

		AfterEach(func() {
			ctrl.Finish()
		})

		It("should stop at the third entry and report it", func() {
			fr := writePO("fr.po", "fr",
				test.POEntry{ID: "one", Str: "un"},
				test.POEntry{ID: "two", Str: "deux"},
				test.POEntry{Context: "count", ID: "three", Str: "trois"},
				test.POEntry{ID: "four", Str: "quatre"},
			)
			rejected := errors.New("rejected")
			sink := mock_resource.NewMockSink(ctrl)
			gomock.InOrder(
				sink.EXPECT().AddResource("one", "un").Return(nil),
				sink.EXPECT().AddResource("two", "deux").Return(nil),
				sink.EXPECT().AddResource("count"+catalog.ContextSeparator+"three", "trois").Return(rejected),
				sink.EXPECT().Close().Return(nil),
			)

			err := converter.New().Run([]string{fr}, sink)
			Expect(errors.Is(err, rejected)).To(BeTrue())
			var catErr *converter.CatalogError
			Expect(errors.As(err, &catErr)).To(BeTrue())
			Expect(catErr.SourceString).To(Equal("three"))
			Expect(catErr.Context).To(Equal("count"))
		})

		It("should reject duplicates kept by the append policy", func() {
			a := writePO("a.po", "fr", test.POEntry{ID: "hello", Str: "bonjour"})
			b := writePO("b.po", "fr", test.POEntry{ID: "hello", Str: "salut"})
			out := filepath.Join(dir, "bundle.yaml")
			sink, err := resource.CreateYAMLFile(out)
			Expect(err).NotTo(HaveOccurred())

			err = converter.New(converter.WithMergePolicy(catalog.MergeAppend)).Run([]string{a, b}, sink)
			Expect(errors.Is(err, resource.ErrDuplicateKey)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring(`"hello"`))
			Expect(readBundle(out)).To(Equal(map[string]string{"hello": "bonjour"}))
		})
	})
})
