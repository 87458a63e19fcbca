package node

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type recordingHook struct {
	received []HookCtx
}

func (h *recordingHook) Func(ctx HookCtx) {
	h.received = append(h.received, ctx)
}

var _ = Describe("HookableBase", func() {
	It("should invoke all registered hooks", func() {
		hookable := &HookableBase{}
		hook1 := &recordingHook{}
		hook2 := &recordingHook{}

		hookable.AcceptHook(hook1)
		hookable.AcceptHook(hook2)
		Expect(hookable.NumHooks()).To(Equal(2))

		ctx := HookCtx{Pos: HookPosFrameSent}
		hookable.InvokeHook(ctx)

		Expect(hook1.received).To(HaveLen(1))
		Expect(hook2.received).To(HaveLen(1))
		Expect(hook1.received[0].Pos).To(Equal(HookPosFrameSent))
	})
})
