package catalog

func gl2x() []TierSpec {
	return []TierSpec{
		tier("2.0",
			fn("BlendEquationSeparate", tVoid, tEnum, tEnum),
			fn("DrawBuffers", tVoid, tSizei, tPtr),
			fn("StencilOpSeparate", tVoid, tEnum, tEnum, tEnum, tEnum),
			fn("StencilFuncSeparate", tVoid, tEnum, tEnum, tInt, tUint),
			fn("StencilMaskSeparate", tVoid, tEnum, tUint),
			fn("AttachShader", tVoid, tUint, tUint),
			fn("BindAttribLocation", tVoid, tUint, tUint, tStr),
			fn("CompileShader", tVoid, tUint),
			fn("CreateProgram", tUint),
			fn("CreateShader", tUint, tEnum),
			fn("DeleteProgram", tVoid, tUint),
			fn("DeleteShader", tVoid, tUint),
			fn("DetachShader", tVoid, tUint, tUint),
			fn("DisableVertexAttribArray", tVoid, tUint),
			fn("EnableVertexAttribArray", tVoid, tUint),
			fn("GetActiveAttrib", tVoid, tUint, tUint, tSizei, tPtr, tPtr, tPtr, tPtr),
			fn("GetActiveUniform", tVoid, tUint, tUint, tSizei, tPtr, tPtr, tPtr, tPtr),
			fn("GetAttachedShaders", tVoid, tUint, tSizei, tPtr, tPtr),
			fn("GetAttribLocation", tInt, tUint, tStr),
			fn("GetProgramiv", tVoid, tUint, tEnum, tPtr),
			fn("GetProgramInfoLog", tVoid, tUint, tSizei, tPtr, tPtr),
			fn("GetShaderiv", tVoid, tUint, tEnum, tPtr),
			fn("GetShaderInfoLog", tVoid, tUint, tSizei, tPtr, tPtr),
			fn("GetShaderSource", tVoid, tUint, tSizei, tPtr, tPtr),
			fn("GetUniformLocation", tInt, tUint, tStr),
			fn("GetUniformfv", tVoid, tUint, tInt, tPtr),
			fn("GetUniformiv", tVoid, tUint, tInt, tPtr),
			fn("GetVertexAttribdv", tVoid, tUint, tEnum, tPtr),
			fn("GetVertexAttribfv", tVoid, tUint, tEnum, tPtr),
			fn("GetVertexAttribiv", tVoid, tUint, tEnum, tPtr),
			fn("GetVertexAttribPointerv", tVoid, tUint, tEnum, tPtr),
			fn("IsProgram", tBool, tUint),
			fn("IsShader", tBool, tUint),
			fn("LinkProgram", tVoid, tUint),
			fn("ShaderSource", tVoid, tUint, tSizei, tPtr, tPtr),
			fn("UseProgram", tVoid, tUint),
			fn("Uniform1f", tVoid, tInt, tFloat),
			fn("Uniform2f", tVoid, tInt, tFloat, tFloat),
			fn("Uniform3f", tVoid, tInt, tFloat, tFloat, tFloat),
			fn("Uniform4f", tVoid, tInt, tFloat, tFloat, tFloat, tFloat),
			fn("Uniform1i", tVoid, tInt, tInt),
			fn("Uniform2i", tVoid, tInt, tInt, tInt),
			fn("Uniform3i", tVoid, tInt, tInt, tInt, tInt),
			fn("Uniform4i", tVoid, tInt, tInt, tInt, tInt, tInt),
			fn("Uniform1fv", tVoid, tInt, tSizei, tPtr),
			fn("Uniform2fv", tVoid, tInt, tSizei, tPtr),
			fn("Uniform3fv", tVoid, tInt, tSizei, tPtr),
			fn("Uniform4fv", tVoid, tInt, tSizei, tPtr),
			fn("Uniform1iv", tVoid, tInt, tSizei, tPtr),
			fn("Uniform2iv", tVoid, tInt, tSizei, tPtr),
			fn("Uniform3iv", tVoid, tInt, tSizei, tPtr),
			fn("Uniform4iv", tVoid, tInt, tSizei, tPtr),
			fn("UniformMatrix2fv", tVoid, tInt, tSizei, tBool, tPtr),
			fn("UniformMatrix3fv", tVoid, tInt, tSizei, tBool, tPtr),
			fn("UniformMatrix4fv", tVoid, tInt, tSizei, tBool, tPtr),
			fn("ValidateProgram", tVoid, tUint),
			fn("VertexAttrib1d", tVoid, tUint, tDouble),
			fn("VertexAttrib1f", tVoid, tUint, tFloat),
			fn("VertexAttrib1fv", tVoid, tUint, tPtr),
			fn("VertexAttrib2f", tVoid, tUint, tFloat, tFloat),
			fn("VertexAttrib2fv", tVoid, tUint, tPtr),
			fn("VertexAttrib3f", tVoid, tUint, tFloat, tFloat, tFloat),
			fn("VertexAttrib3fv", tVoid, tUint, tPtr),
			fn("VertexAttrib4f", tVoid, tUint, tFloat, tFloat, tFloat, tFloat),
			fn("VertexAttrib4fv", tVoid, tUint, tPtr),
			fn("VertexAttrib4Nub", tVoid, tUint, tUbyte, tUbyte, tUbyte, tUbyte),
			fn("VertexAttribPointer", tVoid, tUint, tInt, tEnum, tBool, tSizei, tPtr),
		),
		tier("2.1",
			fn("UniformMatrix2x3fv", tVoid, tInt, tSizei, tBool, tPtr),
			fn("UniformMatrix3x2fv", tVoid, tInt, tSizei, tBool, tPtr),
			fn("UniformMatrix2x4fv", tVoid, tInt, tSizei, tBool, tPtr),
			fn("UniformMatrix4x2fv", tVoid, tInt, tSizei, tBool, tPtr),
			fn("UniformMatrix3x4fv", tVoid, tInt, tSizei, tBool, tPtr),
			fn("UniformMatrix4x3fv", tVoid, tInt, tSizei, tBool, tPtr),
		),
	}
}

func gl3x() []TierSpec {
	return []TierSpec{
		tier("3.0",
			fn("ColorMaski", tVoid, tUint, tBool, tBool, tBool, tBool),
			fn("GetBooleani_v", tVoid, tEnum, tUint, tPtr),
			fn("GetIntegeri_v", tVoid, tEnum, tUint, tPtr),
			fn("Enablei", tVoid, tEnum, tUint),
			fn("Disablei", tVoid, tEnum, tUint),
			fn("IsEnabledi", tBool, tEnum, tUint),
			fn("BeginTransformFeedback", tVoid, tEnum),
			fn("EndTransformFeedback", tVoid),
			fn("BindBufferRange", tVoid, tEnum, tUint, tUint, tIntptr, tSizeiptr),
			fn("BindBufferBase", tVoid, tEnum, tUint, tUint),
			fn("TransformFeedbackVaryings", tVoid, tUint, tSizei, tPtr, tEnum),
			fn("GetTransformFeedbackVarying", tVoid, tUint, tUint, tSizei, tPtr, tPtr, tPtr, tPtr),
			fn("ClampColor", tVoid, tEnum, tEnum),
			fn("BeginConditionalRender", tVoid, tUint, tEnum),
			fn("EndConditionalRender", tVoid),
			fn("VertexAttribIPointer", tVoid, tUint, tInt, tEnum, tSizei, tPtr),
			fn("GetVertexAttribIiv", tVoid, tUint, tEnum, tPtr),
			fn("GetVertexAttribIuiv", tVoid, tUint, tEnum, tPtr),
			fn("VertexAttribI1i", tVoid, tUint, tInt),
			fn("VertexAttribI4i", tVoid, tUint, tInt, tInt, tInt, tInt),
			fn("VertexAttribI4ui", tVoid, tUint, tUint, tUint, tUint, tUint),
			fn("VertexAttribI4iv", tVoid, tUint, tPtr),
			fn("VertexAttribI4uiv", tVoid, tUint, tPtr),
			fn("GetUniformuiv", tVoid, tUint, tInt, tPtr),
			fn("BindFragDataLocation", tVoid, tUint, tUint, tStr),
			fn("GetFragDataLocation", tInt, tUint, tStr),
			fn("Uniform1ui", tVoid, tInt, tUint),
			fn("Uniform2ui", tVoid, tInt, tUint, tUint),
			fn("Uniform3ui", tVoid, tInt, tUint, tUint, tUint),
			fn("Uniform4ui", tVoid, tInt, tUint, tUint, tUint, tUint),
			fn("Uniform1uiv", tVoid, tInt, tSizei, tPtr),
			fn("Uniform2uiv", tVoid, tInt, tSizei, tPtr),
			fn("Uniform3uiv", tVoid, tInt, tSizei, tPtr),
			fn("Uniform4uiv", tVoid, tInt, tSizei, tPtr),
			fn("TexParameterIiv", tVoid, tEnum, tEnum, tPtr),
			fn("TexParameterIuiv", tVoid, tEnum, tEnum, tPtr),
			fn("GetTexParameterIiv", tVoid, tEnum, tEnum, tPtr),
			fn("GetTexParameterIuiv", tVoid, tEnum, tEnum, tPtr),
			fn("ClearBufferiv", tVoid, tEnum, tInt, tPtr),
			fn("ClearBufferuiv", tVoid, tEnum, tInt, tPtr),
			fn("ClearBufferfv", tVoid, tEnum, tInt, tPtr),
			fn("ClearBufferfi", tVoid, tEnum, tInt, tFloat, tInt),
			fn("GetStringi", tPtr, tEnum, tUint),
			fn("IsRenderbuffer", tBool, tUint),
			fn("BindRenderbuffer", tVoid, tEnum, tUint),
			fn("DeleteRenderbuffers", tVoid, tSizei, tPtr),
			fn("GenRenderbuffers", tVoid, tSizei, tPtr),
			fn("RenderbufferStorage", tVoid, tEnum, tEnum, tSizei, tSizei),
			fn("GetRenderbufferParameteriv", tVoid, tEnum, tEnum, tPtr),
			fn("IsFramebuffer", tBool, tUint),
			fn("BindFramebuffer", tVoid, tEnum, tUint),
			fn("DeleteFramebuffers", tVoid, tSizei, tPtr),
			fn("GenFramebuffers", tVoid, tSizei, tPtr),
			fn("CheckFramebufferStatus", tEnum, tEnum),
			fn("FramebufferTexture1D", tVoid, tEnum, tEnum, tEnum, tUint, tInt),
			fn("FramebufferTexture2D", tVoid, tEnum, tEnum, tEnum, tUint, tInt),
			fn("FramebufferTexture3D", tVoid, tEnum, tEnum, tEnum, tUint, tInt, tInt),
			fn("FramebufferRenderbuffer", tVoid, tEnum, tEnum, tEnum, tUint),
			fn("GetFramebufferAttachmentParameteriv", tVoid, tEnum, tEnum, tEnum, tPtr),
			fn("GenerateMipmap", tVoid, tEnum),
			fn("BlitFramebuffer", tVoid, tInt, tInt, tInt, tInt, tInt, tInt, tInt, tInt, tBitfield, tEnum),
			fn("RenderbufferStorageMultisample", tVoid, tEnum, tSizei, tEnum, tSizei, tSizei),
			fn("FramebufferTextureLayer", tVoid, tEnum, tEnum, tUint, tInt, tInt),
			fn("MapBufferRange", tPtr, tEnum, tIntptr, tSizeiptr, tBitfield),
			fn("FlushMappedBufferRange", tVoid, tEnum, tIntptr, tSizeiptr),
			fn("BindVertexArray", tVoid, tUint),
			fn("DeleteVertexArrays", tVoid, tSizei, tPtr),
			fn("GenVertexArrays", tVoid, tSizei, tPtr),
			fn("IsVertexArray", tBool, tUint),
		),
		tier("3.1",
			fn("DrawArraysInstanced", tVoid, tEnum, tInt, tSizei, tSizei),
			fn("DrawElementsInstanced", tVoid, tEnum, tSizei, tEnum, tPtr, tSizei),
			fn("TexBuffer", tVoid, tEnum, tEnum, tUint),
			fn("PrimitiveRestartIndex", tVoid, tUint),
			fn("CopyBufferSubData", tVoid, tEnum, tEnum, tIntptr, tIntptr, tSizeiptr),
			fn("GetUniformIndices", tVoid, tUint, tSizei, tPtr, tPtr),
			fn("GetActiveUniformsiv", tVoid, tUint, tSizei, tPtr, tEnum, tPtr),
			fn("GetActiveUniformName", tVoid, tUint, tUint, tSizei, tPtr, tPtr),
			fn("GetUniformBlockIndex", tUint, tUint, tStr),
			fn("GetActiveUniformBlockiv", tVoid, tUint, tUint, tEnum, tPtr),
			fn("GetActiveUniformBlockName", tVoid, tUint, tUint, tSizei, tPtr, tPtr),
			fn("UniformBlockBinding", tVoid, tUint, tUint, tUint),
		),
		tier("3.2",
			fn("DrawElementsBaseVertex", tVoid, tEnum, tSizei, tEnum, tPtr, tInt),
			fn("DrawRangeElementsBaseVertex", tVoid, tEnum, tUint, tUint, tSizei, tEnum, tPtr, tInt),
			fn("DrawElementsInstancedBaseVertex", tVoid, tEnum, tSizei, tEnum, tPtr, tSizei, tInt),
			fn("MultiDrawElementsBaseVertex", tVoid, tEnum, tPtr, tEnum, tPtr, tSizei, tPtr),
			fn("ProvokingVertex", tVoid, tEnum),
			fn("FenceSync", tSync, tEnum, tBitfield),
			fn("IsSync", tBool, tSync),
			fn("DeleteSync", tVoid, tSync),
			fn("ClientWaitSync", tEnum, tSync, tBitfield, tUint64),
			fn("WaitSync", tVoid, tSync, tBitfield, tUint64),
			fn("GetInteger64v", tVoid, tEnum, tPtr),
			fn("GetSynciv", tVoid, tSync, tEnum, tSizei, tPtr, tPtr),
			fn("GetInteger64i_v", tVoid, tEnum, tUint, tPtr),
			fn("GetBufferParameteri64v", tVoid, tEnum, tEnum, tPtr),
			fn("FramebufferTexture", tVoid, tEnum, tEnum, tUint, tInt),
			fn("TexImage2DMultisample", tVoid, tEnum, tSizei, tEnum, tSizei, tSizei, tBool),
			fn("TexImage3DMultisample", tVoid, tEnum, tSizei, tEnum, tSizei, tSizei, tSizei, tBool),
			fn("GetMultisamplefv", tVoid, tEnum, tUint, tPtr),
			fn("SampleMaski", tVoid, tUint, tBitfield),
		),
		tier("3.3",
			fn("BindFragDataLocationIndexed", tVoid, tUint, tUint, tUint, tStr),
			fn("GetFragDataIndex", tInt, tUint, tStr),
			fn("GenSamplers", tVoid, tSizei, tPtr),
			fn("DeleteSamplers", tVoid, tSizei, tPtr),
			fn("IsSampler", tBool, tUint),
			fn("BindSampler", tVoid, tUint, tUint),
			fn("SamplerParameteri", tVoid, tUint, tEnum, tInt),
			fn("SamplerParameteriv", tVoid, tUint, tEnum, tPtr),
			fn("SamplerParameterf", tVoid, tUint, tEnum, tFloat),
			fn("SamplerParameterfv", tVoid, tUint, tEnum, tPtr),
			fn("SamplerParameterIiv", tVoid, tUint, tEnum, tPtr),
			fn("SamplerParameterIuiv", tVoid, tUint, tEnum, tPtr),
			fn("GetSamplerParameteriv", tVoid, tUint, tEnum, tPtr),
			fn("GetSamplerParameterIiv", tVoid, tUint, tEnum, tPtr),
			fn("GetSamplerParameterfv", tVoid, tUint, tEnum, tPtr),
			fn("GetSamplerParameterIuiv", tVoid, tUint, tEnum, tPtr),
			fn("QueryCounter", tVoid, tUint, tEnum),
			fn("GetQueryObjecti64v", tVoid, tUint, tEnum, tPtr),
			fn("GetQueryObjectui64v", tVoid, tUint, tEnum, tPtr),
			fn("VertexAttribDivisor", tVoid, tUint, tUint),
			fn("VertexAttribP1ui", tVoid, tUint, tEnum, tBool, tUint),
			fn("VertexAttribP2ui", tVoid, tUint, tEnum, tBool, tUint),
			fn("VertexAttribP3ui", tVoid, tUint, tEnum, tBool, tUint),
			fn("VertexAttribP4ui", tVoid, tUint, tEnum, tBool, tUint),
			fn("VertexAttribP4uiv", tVoid, tUint, tEnum, tBool, tPtr),
		),
	}
}
